// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - The config command: path, show and init.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/accessdash/internal/config"
)

// ConfigPathData is the JSON payload of "config path".
type ConfigPathData struct {
	Path    string `json:"path"`
	Exists  bool   `json:"exists"`
	Default bool   `json:"using_defaults"`
}

// ConfigValueData is the JSON payload of "config show <key>".
type ConfigValueData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// HandleConfig handles the "config" command. cfg is the effective
// configuration and path the file it was loaded from ("" for defaults).
func HandleConfig(w io.Writer, args Args, cfg *config.Config, path string) error {
	switch args.Subcommand {
	case "", "show":
		if args.ConfigKey != "" {
			return handleConfigGet(w, args, cfg)
		}
		return handleConfigShow(w, args, cfg, path)

	case "get":
		if args.ConfigKey == "" {
			return NewUsageError("config get needs a key", "e.g. accessdash config get ui.theme")
		}
		return handleConfigGet(w, args, cfg)

	case "path":
		return handleConfigPath(w, args, path)

	case "init":
		return handleConfigInit(w, args)

	default:
		return NewUsageError("unknown config subcommand: "+args.Subcommand, "use path, show or init")
	}
}

func handleConfigGet(w io.Writer, args Args, cfg *config.Config) error {
	value, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return err
	}
	if args.JSON {
		return NewJSONResponse("config show", ConfigValueData{Key: args.ConfigKey, Value: value}).Print(w)
	}
	fmt.Fprintln(w, value)
	return nil
}

func handleConfigShow(w io.Writer, args Args, cfg *config.Config, path string) error {
	if args.JSON {
		return NewJSONResponse("config show", cfg).Print(w)
	}

	source := path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintln(w, render(TitleStyle, "accessdash configuration"))
	fmt.Fprintln(w, render(DimStyle, "# source: "+source))
	fmt.Fprintln(w)

	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return NewCommandError("config", "show", "could not encode configuration", err)
	}
	return nil
}

func handleConfigPath(w io.Writer, args Args, path string) error {
	data := ConfigPathData{Path: path}
	if path == "" {
		data.Default = true
		p, err := config.ConfigPathTOML()
		if err != nil {
			return NewCommandError("config", "path", "no home directory", err)
		}
		data.Path = p
	}
	_, err := os.Stat(data.Path)
	data.Exists = err == nil

	if args.JSON {
		return NewJSONResponse("config path", data).Print(w)
	}

	fmt.Fprintln(w, data.Path)
	if !data.Exists {
		fmt.Fprintln(w, render(DimStyle, "(file does not exist; built-in defaults are used)"))
	}
	return nil
}

func handleConfigInit(w io.Writer, args Args) error {
	target := args.ConfigPath
	if target == "" {
		p, err := config.ConfigPathTOML()
		if err != nil {
			return NewCommandError("config", "init", "no home directory", err)
		}
		target = p
	}

	if strings.EqualFold(filepath.Ext(target), ".json") {
		return NewUsageError("config init writes TOML", "choose a path ending in .toml")
	}

	if _, err := os.Stat(target); err == nil && !args.Force {
		return NewUsageError(target+" already exists", "pass --force to overwrite it")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return NewCommandError("config", "init", "could not check "+target, err)
	}

	if err := config.SaveTOML(config.Default(), target); err != nil {
		return NewCommandError("config", "init", "could not write "+target, err)
	}

	if args.JSON {
		return NewJSONResponse("config init", ConfigPathData{Path: target, Exists: true}).Print(w)
	}
	fmt.Fprintf(w, "%s wrote %s\n", render(SuccessStyle, "[OK]"), target)
	return nil
}
