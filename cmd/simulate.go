package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/suse/saas-tools/pkg/aws"
)

var SimulateSQSCmd = &cli.Command{
	Name:  "simulate-sqs",
	Usage: "Send a marketplace notification to the event queue as the SNS subscription would.",
	Flags: []cli.Flag{
		ProfileFlag,
		RequiredStringFlag(QueueFlag),
		MessageFileFlag,
	},
	Action: func(cCtx *cli.Context) error {
		content, err := readMessage(cCtx.String(MessageFileFlag.Name))
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		queue := aws.NewSQSNotificationQueue(cfg.Config)
		queueURL, err := queue.QueueURL(cCtx.Context, cCtx.String(QueueFlag.Name))
		if err != nil {
			return err
		}
		log.Infow("Got queue", "queue", cCtx.String(QueueFlag.Name), "url", queueURL)

		id, err := queue.Send(cCtx.Context, queueURL, content)
		if err != nil {
			return err
		}
		log.Infow("Sent message", "messageId", id, "action", content.Action)
		return nil
	},
}

var SimulateSNSCmd = &cli.Command{
	Name:  "simulate-sns",
	Usage: "Publish a marketplace notification to an SNS topic.",
	Flags: []cli.Flag{
		ProfileFlag,
		RequiredStringFlag(TopicFlag),
		MessageFileFlag,
	},
	Action: func(cCtx *cli.Context) error {
		content, err := readMessage(cCtx.String(MessageFileFlag.Name))
		if err != nil {
			return err
		}
		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		topic := aws.NewSNSNotificationTopic(cfg.Config, cCtx.String(TopicFlag.Name))
		id, err := topic.Publish(cCtx.Context, content)
		if err != nil {
			return err
		}
		log.Infow("Published message", "messageId", id, "topic", cCtx.String(TopicFlag.Name), "action", content.Action)
		return nil
	},
}
