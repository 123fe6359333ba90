package api

import (
	"strconv"
	"strings"

	"kgeyst.com/scribe/pkg/scribe/domain"
)

// Command is a parsed caption command: an optional target (file path or URL), an optional
// free-form prompt, the `quiet` flag and the `id=<n>` argument. MessageIndex is -1 when no id
// was given.
type Command struct {
	Target       string
	Prompt       string
	Quiet        bool
	MessageIndex int
}

// CaptionCommandArguments reports whether `text` invokes the caption command and returns its
// argument string. The command is "caption" on its own or followed by whitespace; words that
// merely start with it ("captions", "captioned") are ordinary chatter.
func CaptionCommandArguments(text string) (string, bool) {
	if text == "caption" {
		return "", true
	}
	if strings.HasPrefix(text, "caption ") {
		return text[len("caption "):], true
	}
	return "", false
}

// ParseCaptionCommand parses the argument string of the caption command. The grammar is
// deliberately loose: `quiet` and `id=<n>` are picked out of the token stream wherever they
// appear, the first token that looks like a file or URL becomes the target, and everything else
// joins into the prompt.
func ParseCaptionCommand(arguments string) Command {
	command := Command{MessageIndex: -1}
	var promptWords []string
	for _, token := range strings.Fields(arguments) {
		switch {
		case token == "quiet":
			command.Quiet = true
		case strings.HasPrefix(token, "id="):
			index, err := strconv.Atoi(token[len("id="):])
			if err == nil {
				command.MessageIndex = index
			}
		case command.Target == "" && looksLikeTarget(token):
			command.Target = token
		default:
			promptWords = append(promptWords, token)
		}
	}
	command.Prompt = strings.Join(promptWords, " ")
	return command
}

func looksLikeTarget(token string) bool {
	if isURL(token) {
		return true
	}
	return domain.IsImageFileName(token)
}

func isURL(token string) bool {
	return strings.HasPrefix(token, "http://") || strings.HasPrefix(token, "https://")
}
