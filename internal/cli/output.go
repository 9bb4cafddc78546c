package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlayerResult:
		o.printPlayer(v)
	case RosterResult:
		for _, p := range v.Players {
			o.printPlayer(p)
		}
	case CommentResult:
		o.printComment(v, "")
	case UsernameResult:
		fmt.Printf("username: %s\n", v.Username)
	case HealthResult:
		fmt.Printf("status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printPlayer(p PlayerResult) {
	fmt.Printf("%s  %s  (%d comments)\n", p.ID, p.Nickname, p.CommentCount)
	for _, c := range p.Comments {
		o.printComment(c, "  ")
	}
}

func (o *Output) printComment(c CommentResult, indent string) {
	fmt.Printf("%s[%d] %s (by %s)\n", indent, c.ID, c.Text, c.Author)
}
