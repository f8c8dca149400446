package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DFE-Digital/fips-v4/pkg/config"
	"github.com/DFE-Digital/fips-v4/pkg/finder"
	"github.com/DFE-Digital/fips-v4/pkg/storage"
)

var rootCmd = &cobra.Command{
	Use:   "finder",
	Short: "Faceted search over the FIPS product catalog",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(notifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err = cfg.SetupLogging(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newStorage(cfg *config.Config) *storage.DiskStorage {
	opts := []storage.Option{storage.WithTimeout(cfg.LoadTimeout)}
	if cfg.FileCache {
		opts = append(opts, storage.WithCache(storage.NewFileCache()))
	}
	return storage.NewDiskStorage(cfg.DataDir, opts...)
}

func newFinder(cfg *config.Config, ds *storage.DiskStorage) (*finder.Finder, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	opts := []finder.Option{finder.WithPageSize(cfg.PageSize)}
	if cfg.ShowEmails {
		opts = append(opts, finder.WithEmails(cfg.EmailDomain))
	}
	logrus.WithFields(logrus.Fields{
		"dataDir":         cfg.DataDir,
		"excludedParents": len(policy.ExcludedParents),
	}).Debug("creating finder")
	return finder.New(ds, policy, opts...), nil
}
