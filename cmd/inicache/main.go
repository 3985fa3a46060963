package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"inicache/pkg/export"
	"inicache/pkg/ini"
)

var (
	quotedValues bool
	verbose      bool

	setBefore     string
	setAfter      string
	setFirst      bool
	createMissing bool

	exportJSON bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inicache",
		Short: "Inspect and edit INI files through an in-memory cache",
	}
	rootCmd.PersistentFlags().BoolVar(&quotedValues, "quoted", false, "Allow double-quoted values (quotes may wrap ';' and whitespace)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped lines and other parse diagnostics")

	listCmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Print all sections and keys in order",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	getCmd := &cobra.Command{
		Use:   "get [file] [section] [key]",
		Short: "Print the value of one key",
		Args:  cobra.ExactArgs(3),
		RunE:  runGet,
	}

	setCmd := &cobra.Command{
		Use:   "set [file] [section] [key] [value]",
		Short: "Set a key and write the file back",
		Args:  cobra.ExactArgs(4),
		RunE:  runSet,
	}
	setCmd.Flags().StringVar(&setBefore, "before", "", "Insert the new key before this key")
	setCmd.Flags().StringVar(&setAfter, "after", "", "Insert the new key after this key")
	setCmd.Flags().BoolVar(&setFirst, "first", false, "Insert the new key at the head of the section")
	setCmd.Flags().BoolVar(&createMissing, "create", false, "Start from an empty cache when the file does not exist")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Render the file as a YAML document",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "Render JSON instead of YAML")

	rootCmd.AddCommand(listCmd, getCmd, setCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadOptions() []ini.Option {
	if !verbose {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil
	}
	return []ini.Option{ini.WithLogger(logger)}
}

func runList(cmd *cobra.Command, args []string) error {
	cache, err := ini.Load(args[0], quotedValues, loadOptions()...)
	if err != nil {
		return err
	}
	for _, section := range cache.Sections() {
		fmt.Printf("[%s]\n", section.Name())
		name, value, it, ok := section.FirstValue()
		for ok {
			fmt.Printf("%s=%s\n", name, value)
			name, value, ok = it.NextValue()
		}
		if it != nil {
			it.Close()
		}
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	cache, err := ini.Load(args[0], quotedValues, loadOptions()...)
	if err != nil {
		return err
	}
	section := cache.GetSection(args[1])
	if section == nil {
		return fmt.Errorf("section %q not found", args[1])
	}
	value, err := section.GetValue(args[2])
	if err != nil {
		return fmt.Errorf("key %q in section %q: %w", args[2], args[1], err)
	}
	fmt.Println(value)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	path, sectionName, keyName, value := args[0], args[1], args[2], args[3]

	cache, err := ini.Load(path, quotedValues, loadOptions()...)
	if err != nil {
		if createMissing && errors.Is(err, os.ErrNotExist) {
			cache = ini.New(loadOptions()...)
		} else {
			return err
		}
	}

	section, err := cache.AddSection(sectionName)
	if err != nil {
		return fmt.Errorf("add section %q: %w", sectionName, err)
	}

	anchor, mode := resolveAnchor(section)
	if _, err := section.InsertKey(anchor, mode, keyName, value); err != nil {
		return fmt.Errorf("set %s=%s: %w", keyName, value, err)
	}
	return cache.Save(path)
}

// resolveAnchor maps the --first/--before/--after flags onto an anchor
// key and insertion mode. An anchor name that does not exist in the
// section falls back to head/tail placement, same as the library.
func resolveAnchor(section *ini.Section) (*ini.Key, ini.InsertionMode) {
	switch {
	case setFirst:
		return nil, ini.InsertFirst
	case setBefore != "":
		return findKey(section, setBefore), ini.InsertBefore
	case setAfter != "":
		return findKey(section, setAfter), ini.InsertAfter
	default:
		return nil, ini.InsertLast
	}
}

func findKey(section *ini.Section, name string) *ini.Key {
	for _, k := range section.Keys() {
		if strings.EqualFold(k.Name(), name) {
			return k
		}
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cache, err := ini.Load(args[0], quotedValues, loadOptions()...)
	if err != nil {
		return err
	}
	var data []byte
	if exportJSON {
		data, err = export.JSON(cache)
	} else {
		data, err = export.YAML(cache)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", args[0], err)
	}
	fmt.Print(string(data))
	return nil
}
