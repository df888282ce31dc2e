// Package cmd is for command line interactions with the centrifuge application
package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "centrifuge",
	Short: `Classify sequencing reads against an index of reference genomes.
Reports the species and genus behind each read's best seed matches`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	cobra.OnInitialize(initSettings)

	// settings is an optional YAML file that overrides the defaults and
	// that bound command line flags override in turn
	rootCmd.PersistentFlags().StringP("settings", "s", "", "optional YAML settings file")
}

// initSettings reads the settings file in, if one was passed or one is
// found in the working or home directory.
func initSettings() {
	if settings, _ := rootCmd.PersistentFlags().GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("failed to read settings file: %v", err)
		}
	} else {
		viper.SetConfigName(".centrifuge")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.ReadInConfig()
	}

	viper.SetEnvPrefix("centrifuge")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}
