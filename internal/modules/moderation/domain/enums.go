//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// EventKind represents the membership change an update carries
// ENUM(member_join,channel_member_join,member_leave,none)
type EventKind string

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string
