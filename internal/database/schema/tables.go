// Package schema holds the DDL of the tables owned by the admin API.
//
// "User", journey_progress and user_session_form_progress belong to the
// coaching app and are never created or altered here.
package schema

// TableDefinitions contains the SQL statements creating the owned tables
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS coaches (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT,
		email TEXT UNIQUE,
		clients TEXT[] DEFAULT '{}',
		session_links TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS people (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT,
		email TEXT,
		role TEXT,
		data JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS roster_coaches (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT,
		email TEXT,
		role TEXT,
		data JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS mappings (
		mapping_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		person_id TEXT NOT NULL,
		coach_email TEXT NOT NULL,
		person_data JSONB,
		mapped_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	)`,
}

// IndexDefinitions run after every table exists
var IndexDefinitions = []string{
	`CREATE INDEX IF NOT EXISTS idx_people_user_id ON people(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_roster_coaches_user_id ON roster_coaches(user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_mappings_user_id ON mappings(user_id, mapped_at DESC)`,
}

// TableNames lists the owned tables in creation order
var TableNames = []string{
	"coaches",
	"people",
	"roster_coaches",
	"mappings",
}
