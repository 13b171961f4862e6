package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/config"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/genre"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/player"
	"github.com/AvaAvarai/IndimensionalYoutube/provider"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func errUnknownKey(name string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func lookupField(name string) (config.Field, error) {
	field, ok := config.Default[name]
	if !ok {
		return config.Field{}, errUnknownKey(name)
	}
	return field, nil
}

// configKey takes the key from the first argument or from --key.
func configKey(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if flag := cmd.Flags().Lookup("key"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}

	return "", errors.New("key is required as an argument or --key flag")
}

// parseValue converts raw command line values to the type of the field default.
// Lists accept both repeated values and comma separated ones.
func parseValue(field config.Field, raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required as an argument or --value flag")
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer, got %q", field.Key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s expects a boolean, got %q", field.Key, raw[0])
		}
		return b, nil
	case []string:
		return lo.FlatMap(raw, func(item string, _ int) []string {
			return genre.Split(item)
		}), nil
	default:
		return nil, fmt.Errorf("%s can not be set from the command line", field.Key)
	}
}

// normalizeValue checks values that name something and rewrites them to the canonical name.
func normalizeValue(name string, v any) (any, error) {
	switch name {
	case key.GenresList:
		return genre.ResolveAll(v.([]string), constant.DefaultGenres, true)
	case key.Player:
		p := strings.ToLower(v.(string))
		if !lo.Contains(player.Names, p) {
			return nil, fmt.Errorf("unknown player %q, expected one of %s", v, strings.Join(player.Names, ", "))
		}
		return p, nil
	case key.SearchProvider:
		p, ok := provider.Get(v.(string))
		if !ok {
			return nil, fmt.Errorf("unknown provider %q, see \"%s sources list\"", v, constant.App)
		}
		return p.ID, nil
	case key.IconsVariant:
		if !lo.Contains(icon.AvailableVariants(), v.(string)) {
			return nil, fmt.Errorf("unknown icons variant %q, expected one of %s", v, strings.Join(icon.AvailableVariants(), ", "))
		}
	}

	return v, nil
}

func configFile() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

func saveConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func succeed(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys with their current values",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = lo.Map(keys, func(name string, _ int) config.Field {
				field, err := lookupField(name)
				handleErr(err)
				return field
			})
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(fields[i].Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "The key to change")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "The new value")
	lo.Must0(configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Change a configuration value and save it",
	Example:           "  itube config set genres.list music,tech,\"cooking shows\"",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := configKey(cmd, args)
		handleErr(err)

		field, err := lookupField(name)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		value, err := parseValue(field, raw)
		handleErr(err)

		value, err = normalizeValue(name, value)
		handleErr(err)

		viper.Set(name, value)
		handleErr(config.Validate())
		handleErr(saveConfig())

		succeed("set %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "The key to read")
	lo.Must0(configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
	configGetCmd.SetOut(os.Stdout)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := configKey(cmd, args)
		handleErr(err)

		_, err = lookupField(name)
		handleErr(err)

		cmd.Println(viper.Get(name))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		succeed("wrote config to %s", path)
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		succeed("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)

	configResetCmd.Flags().StringP("key", "k", "", "The key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	configResetCmd.MarkFlagsOneRequired("key", "all")
	lo.Must0(configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default values",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for name, field := range config.Default {
				viper.Set(name, field.Value)
			}
			handleErr(saveConfig())
			succeed("reset all config values")
			return
		}

		name := lo.Must(cmd.Flags().GetString("key"))
		field, err := lookupField(name)
		handleErr(err)

		viper.Set(name, field.Value)
		handleErr(saveConfig())
		succeed("reset %s to %s", style.Fg(color.Purple)(name), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}
