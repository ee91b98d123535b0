// Package consts contains constants for the bot domain
package consts

// Command represents a bot command
type Command struct {
	Name        string
	Description string
}

// Bot commands
var (
	CommandStart = Command{Name: "start", Description: "Start the bot and see a welcome message"}
	CommandHelp  = Command{Name: "help", Description: "View the help message"}
)

// AllCommands contains all available bot commands
var AllCommands = []Command{
	CommandStart,
	CommandHelp,
}

// Path returns the command as it appears in a message, e.g. "/start"
func (c Command) Path() string {
	return "/" + c.Name
}
