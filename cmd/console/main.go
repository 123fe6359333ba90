package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"kgeyst.com/scribe/pkg/common"
	"kgeyst.com/scribe/pkg/scribe/api"
	"kgeyst.com/scribe/pkg/scribe/domain"
)

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfig("config.yaml")
	if err != nil {
		config = common.NewConfigFromValues(nil) // defaults are good enough to play around
	}
	userName := config.GetStringOrDefault("userName", "John")
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	scribe, err := api.NewAPI(config, api.Frontend{
		Reviewer:    &consoleReviewer{rl: rl},
		PromptAsker: &consolePromptAsker{rl: rl},
		Notifier:    &consoleNotifier{},
		Busy:        &consoleBusyIndicator{},
	})
	if err != nil {
		return err
	}
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		arguments, isCaptionCommand := api.CaptionCommandArguments(line)
		switch {
		case line == "":
			continue
		case isCaptionCommand:
			command := api.ParseCaptionCommand(arguments)
			caption := scribe.Execute(command, userName)
			if caption != "" {
				fmt.Println(caption)
			}
		case strings.HasPrefix(line, "source "):
			source, err := domain.ParseCaptionSource(strings.TrimSpace(line[len("source "):]))
			if err != nil {
				fmt.Println(err)
				continue
			}
			scribe.Settings().SetSource(source)
		case strings.HasPrefix(line, "template "):
			scribe.Settings().SetTemplate(line[len("template "):])
		case line == "refine":
			scribe.Settings().SetRefineMode(!scribe.Settings().RefineMode())
			fmt.Printf("refine mode: %t\n", scribe.Settings().RefineMode())
		case line == "log":
			printChatLog(scribe.ChatLog())
		default:
			scribe.RecordMessage(userName, line)
		}
	}
	return nil
}

func printChatLog(chatLog domain.ChatLog) {
	for index := 0; index < chatLog.Count(); index++ {
		message, err := chatLog.MessageAt(index)
		if err != nil {
			continue
		}
		attachmentMark := ""
		if message.Attachment != nil {
			attachmentMark = " [image]"
		}
		fmt.Printf("%d. %s: %s%s\n", index, message.Sender, message.Text, attachmentMark)
	}
}

type consoleReviewer struct {
	rl *readline.Instance
}

// Review lets the user edit the composed message in place. Ctrl+C (or EOF) declines it.
func (c *consoleReviewer) Review(text string) (string, bool, error) {
	fmt.Println("edit the message below, press Enter to send, Ctrl+C to cancel:")
	edited, err := c.rl.ReadlineWithDefault(text)
	if err != nil {
		return "", false, nil
	}
	return strings.TrimSpace(edited), true, nil
}

type consolePromptAsker struct {
	rl *readline.Instance
}

func (c *consolePromptAsker) AskPrompt(defaultPrompt string) (string, error) {
	fmt.Println("what should I ask about the image?")
	answer, err := c.rl.ReadlineWithDefault(defaultPrompt)
	if err != nil {
		return defaultPrompt, nil
	}
	return strings.TrimSpace(answer), nil
}

type consoleNotifier struct{}

func (c *consoleNotifier) Notify(message string) {
	fmt.Println("(!) " + message)
}

type consoleBusyIndicator struct{}

func (c *consoleBusyIndicator) SetBusy(busy bool) {
	if busy {
		fmt.Println("(captioning...)")
	}
}
