package mailer

import (
	"fmt"
	"html"
	"io"
	"os"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/coachdesk/coachdesk/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// SendCoachAssignment tells a coach that a client was assigned to them
	SendCoachAssignment(notice CoachAssignmentNotice) error
}

// CoachAssignmentNotice carries what the coach needs to reach the client
type CoachAssignmentNotice struct {
	CoachEmail      string
	CoachName       string
	ClientName      string
	ClientEmail     string
	MeetingLink     string
	SessionDatetime string
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

func assignmentSubject(n CoachAssignmentNotice) string {
	return fmt.Sprintf("New client assigned: %s", displayName(n.ClientName, n.ClientEmail))
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}

func assignmentPlainBody(n CoachAssignmentNotice) string {
	body := fmt.Sprintf("Hello %s,\n\n%s has been assigned to you.\n", displayName(n.CoachName, n.CoachEmail), displayName(n.ClientName, n.ClientEmail))
	if n.ClientEmail != "" {
		body += fmt.Sprintf("Client email: %s\n", n.ClientEmail)
	}
	if n.SessionDatetime != "" {
		body += fmt.Sprintf("Scheduled call: %s\n", n.SessionDatetime)
	}
	if n.MeetingLink != "" {
		body += fmt.Sprintf("Meeting link: %s\n", n.MeetingLink)
	}
	return body + "\nThanks,\nThe Coachdesk Team"
}

func assignmentHTMLBody(n CoachAssignmentNotice) string {
	details := ""
	if n.ClientEmail != "" {
		details += fmt.Sprintf("<p>Client email: %s</p>", html.EscapeString(n.ClientEmail))
	}
	if n.SessionDatetime != "" {
		details += fmt.Sprintf("<p>Scheduled call: %s</p>", html.EscapeString(n.SessionDatetime))
	}
	if n.MeetingLink != "" {
		link := html.EscapeString(n.MeetingLink)
		details += fmt.Sprintf(`<p>Meeting link: <a href="%s">%s</a></p>`, link, link)
	}

	return fmt.Sprintf(`
	<html>
		<body>
			<h1>New client assigned</h1>
			<p>Hello %s,</p>
			<p><strong>%s</strong> has been assigned to you.</p>
			%s
			<p>Thanks,<br>The Coachdesk Team</p>
		</body>
	</html>`,
		html.EscapeString(displayName(n.CoachName, n.CoachEmail)),
		html.EscapeString(displayName(n.ClientName, n.ClientEmail)),
		details)
}

// SendCoachAssignment sends the assignment email to the coach
func (m *SMTPMailer) SendCoachAssignment(notice CoachAssignmentNotice) error {
	if notice.CoachEmail == "" {
		return fmt.Errorf("coach email is required")
	}

	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(notice.CoachEmail); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(assignmentSubject(notice))
	msg.SetBodyString(mail.TypeTextHTML, assignmentHTMLBody(notice))
	msg.AddAlternativeString(mail.TypeTextPlain, assignmentPlainBody(notice))

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// test mode
	if client == nil {
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send coach assignment email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// unauthenticated relays are allowed
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just prints emails
type ConsoleMailer struct {
	out io.Writer
}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{out: os.Stdout}
}

// NewConsoleMailerWithWriter prints to w instead of stdout
func NewConsoleMailerWithWriter(w io.Writer) *ConsoleMailer {
	return &ConsoleMailer{out: w}
}

// SendCoachAssignment prints the assignment email
func (m *ConsoleMailer) SendCoachAssignment(notice CoachAssignmentNotice) error {
	fmt.Fprintln(m.out, "==============================================================")
	fmt.Fprintln(m.out, "                 COACH ASSIGNMENT EMAIL                       ")
	fmt.Fprintln(m.out, "==============================================================")
	fmt.Fprintf(m.out, "To: %s\n", notice.CoachEmail)
	fmt.Fprintf(m.out, "Subject: %s\n\n", assignmentSubject(notice))
	fmt.Fprintln(m.out, assignmentPlainBody(notice))
	fmt.Fprintln(m.out, "==============================================================")
	return nil
}
