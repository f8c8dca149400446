package main

import (
	"fmt"
	"path/filepath"
	"slices"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DFE-Digital/fips-v4/pkg/messaging"
	"github.com/DFE-Digital/fips-v4/pkg/storage"
)

var dataFiles = []string{storage.CatalogFile, storage.TaxonomyFile, storage.UserGroupsFile}

var notifyCmd = &cobra.Command{
	Use:   "notify-change [file...]",
	Short: "Tell running servers that data files were replaced",
	Example: `  finder notify-change
  finder notify-change fips.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.RabbitUrl == "" {
			return fmt.Errorf("RABBIT_URL is not set")
		}
		msg, err := dataChangedMessage(args)
		if err != nil {
			return err
		}
		conn, err := amqp.Dial(cfg.RabbitUrl)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err = messaging.SendChange(conn, cfg.RabbitPrefix, messaging.DataChanged, msg); err != nil {
			return err
		}
		logrus.WithField("files", msg.Files).Info("data change sent")
		return nil
	},
}

// dataChangedMessage names the changed files. No arguments means every data
// file, paths are reduced to their base name.
func dataChangedMessage(args []string) (messaging.DataChangedMessage, error) {
	if len(args) == 0 {
		return messaging.DataChangedMessage{Files: slices.Clone(dataFiles)}, nil
	}
	files := make([]string, 0, len(args))
	for _, arg := range args {
		name := filepath.Base(arg)
		if !slices.Contains(dataFiles, name) {
			return messaging.DataChangedMessage{}, fmt.Errorf("unknown data file %q", arg)
		}
		if !slices.Contains(files, name) {
			files = append(files, name)
		}
	}
	return messaging.DataChangedMessage{Files: files}, nil
}
