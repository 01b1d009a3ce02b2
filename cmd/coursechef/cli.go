package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/chef"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DataDir    string
	Chef       *chef.Chef
	Runs       coursechef.RunService
	Cache      coursechef.Cache
	Translator coursechef.Translator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data       string `short:"d" env:"COURSECHEF_DATA" default:"chefdata" help:"Data directory holding course_list.json and outputs"`
	Vocabulary string `help:"YAML file overriding vocabulary keys"`
	Verbose    bool   `short:"v" help:"Enable debug logging"`

	Language        string `default:"ar" help:"Language code attached to every node"`
	License         string `default:"CC BY-NC-SA" help:"License id attached to every node (empty for none)"`
	CopyrightHolder string `default:"Edraak" help:"License copyright holder"`
	Author          string `default:"Edraak" help:"Author attached to every node"`

	Convert ConvertCmd `cmd:"" help:"Convert staged courses into a channel"`
	Print   PrintCmd   `cmd:"" help:"Print the tree of one staged course"`
	Runs    RunsCmd    `cmd:"" help:"List recorded conversion runs"`
	Cache   CacheCmd   `cmd:"" help:"Manage the translation cache"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	List        string   `arg:"" optional:"" help:"Course list file (default: <data>/course_list.json)"`
	Course      []string `short:"c" name:"course" help:"Convert only the named course (repeatable)"`
	Concurrency int      `short:"j" default:"1" help:"Courses converted in parallel"`
	KeepGoing   bool     `short:"k" help:"Continue past failed courses"`

	Title        string `help:"Channel title (default: course list title)"`
	Description  string `help:"Channel description"`
	SourceDomain string `default:"edraak.org" help:"Channel source domain"`
	SourceID     string `default:"edraak-courses" help:"Channel source id"`
	Thumbnail    string `help:"Channel thumbnail path"`
}

// PrintCmd is the "print" subcommand.
type PrintCmd struct {
	Course    string `arg:"" type:"existingdir" help:"Staged course path (the directory holding course/)"`
	Stage     string `short:"s" enum:"original,clean,transformed" default:"clean" help:"Tree to print: original, clean or transformed"`
	Translate bool   `short:"t" help:"Translate titles to English (requires GEMINI_API_KEY)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Course string `help:"Show runs of one course only"`
	Failed bool   `help:"Show failed runs only"`
	Limit  int    `short:"n" default:"20" help:"Maximum runs shown"`
}

// CacheCmd groups cache maintenance subcommands.
type CacheCmd struct {
	Expire CacheExpireCmd `cmd:"" help:"Delete expired cache entries"`
}

// CacheExpireCmd is the "cache expire" subcommand.
type CacheExpireCmd struct{}
