package main

import (
	"fmt"
	"strings"

	"github.com/whyrusleeping/hellabot"

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
		return err
	}
	agentName := config.GetStringOrDefault(api.ConfigKeyAgentName, "Scribe")
	roomName := config.GetStringOrDefault("roomName", "JohnRoom")
	serverName := config.GetStringOrDefault("serverName", "irc.euirc.net:6667")
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	notifier := &channelNotifier{channel: "#" + roomName}
	scribe, err := api.NewAPI(config, api.Frontend{Notifier: notifier, Logger: logger})
	if err != nil {
		return err
	}
	// Caption operations run network calls, so they go through the job queue instead of blocking
	// the bot's trigger goroutine.
	jobQueue := common.NewJobQueue(logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, agentName)
	if err != nil {
		return err
	}
	notifier.bot = ircBot
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return true
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			if m.Command != "PRIVMSG" || len(m.To) == 0 || m.To[0] != '#' {
				return true
			}
			if !strings.HasPrefix(strings.ToLower(m.Content), strings.ToLower(agentName)) {
				// Plain chatter still lands in the chat log so its images can be captioned by id later.
				scribe.RecordMessage(m.From, m.Content)
				return true
			}
			what := strings.TrimSpace(m.Content[len(agentName):])
			if len(what) == 0 {
				return false
			}
			if what[0] == ',' || what[0] == ':' {
				what = strings.TrimSpace(what[1:])
			}
			if arguments, isCaptionCommand := api.CaptionCommandArguments(what); isCaptionCommand {
				command := api.ParseCaptionCommand(arguments)
				from := m.From
				jobQueue.Enqueue(func() error {
					caption := scribe.Execute(command, from)
					if caption != "" {
						b.Reply(m, from+" "+caption)
					}
					return nil
				})
				return false
			}
			if strings.HasPrefix(what, "source ") {
				source, err := domain.ParseCaptionSource(strings.TrimSpace(what[len("source "):]))
				if err != nil {
					b.Reply(m, m.From+" "+err.Error())
					return false
				}
				scribe.Settings().SetSource(source)
				b.Reply(m, m.From+" captioning with "+source.String())
				return false
			}
			scribe.RecordMessage(m.From, m.Content)
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{"#" + roomName}
	ircBot.Run()
	return nil
}

// channelNotifier surfaces caption failures right in the channel; that's the closest thing IRC
// has to a toast notification.
type channelNotifier struct {
	bot     *hbot.Bot
	channel string
}

func (c *channelNotifier) Notify(message string) {
	if c.bot == nil {
		fmt.Println(message)
		return
	}
	c.bot.Msg(c.channel, message)
}
