package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/fatih/color"
)

var (
	userColor  = color.New(color.FgCyan, color.Bold)
	botColor   = color.New(color.FgGreen, color.Bold)
	greyColor  = color.New(color.FgHiBlack)
	errorColor = color.New(color.FgRed)
	titleColor = color.New(color.FgCyan, color.Bold)
)

const (
	userLabel = "Você"
	botLabel  = "Cleazy"
)

// renderMessage prints one chat bubble:
//
//	[14:30] Você: text
//	        continuation lines are indented
func renderMessage(w io.Writer, m models.Message) {
	label, c := botLabel, botColor
	if m.Sender == models.SenderUser {
		label, c = userLabel, userColor
	}

	stamp := fmt.Sprintf("[%s]", m.Timestamp)
	indent := strings.Repeat(" ", len(stamp)+1)

	lines := strings.Split(m.Text, "\n")
	fmt.Fprintf(w, "%s %s %s\n", greyColor.Sprint(stamp), c.Sprint(label+":"), lines[0])
	for _, l := range lines[1:] {
		fmt.Fprintf(w, "%s%s\n", indent, l)
	}
}

func printTranscript(w io.Writer, msgs []models.Message) {
	for _, m := range msgs {
		renderMessage(w, m)
	}
}
