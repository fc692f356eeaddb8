package main

import (
	"flag"
	"fmt"

	"github.com/danmuck/coordctl/internal/config"
	"github.com/danmuck/coordctl/internal/credstore"
)

func runAccounts(args []string) error {
	fs := flag.NewFlagSet("accounts", flag.ExitOnError)
	configPath := fs.String("config", "coordctl.toml", "client config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	store, err := credstore.OpenFileStore(cfg.TokenStorePath)
	if err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		rest = []string{"list"}
	}
	switch rest[0] {
	case "list":
		ids, err := store.List()
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("no stored accounts")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	case "add":
		if len(rest) != 3 {
			return fmt.Errorf("usage: coordctl accounts add <account> <token>")
		}
		return store.Put(rest[1], rest[2])
	case "remove":
		if len(rest) != 2 {
			return fmt.Errorf("usage: coordctl accounts remove <account>")
		}
		return store.Delete(rest[1])
	default:
		return fmt.Errorf("unknown accounts subcommand %q", rest[0])
	}
}
