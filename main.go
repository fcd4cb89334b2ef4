package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumenkeep/registry/registry"
	"github.com/lumenkeep/registry/store"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

const usage = `usage: registry [-d dir] [-c config] [-as identity] <command>

commands:
  init                      generate an admin identity and write the config
  create <amount>           mint one asset held by the caller
  mint <a1,a2,...>          mint a batch of assets
  transfer <id> <from>      move an asset to the caller
  show <id>                 print one asset detail record
  range <start> <count>     print detail records for an id window
  journal [limit]           print the mutation journal
`

func main() {
	ctx := context.Background()

	bp := flag.String("d", "~/.lumenkeep/registry/data", "database directory path")
	cp := flag.String("c", "~/.lumenkeep/registry/config.toml", "configuration file path")
	as := flag.String("as", "", "caller identity, defaults to the configured admin")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print(usage)
		os.Exit(2)
	}

	*cp = expandHome(*cp)
	*bp = expandHome(*bp)

	if args[0] == "init" {
		runInit(*cp, logger)
		return
	}

	conf, err := registry.Setup(*cp)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration")
	}
	if lvl, err := zerolog.ParseLevel(conf.LogLevel); err == nil {
		logger = logger.Level(lvl)
	}
	if conf.StoreDir != "" {
		*bp = expandHome(conf.StoreDir)
	}

	db, err := store.OpenBadger(ctx, *bp, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("store")
	}
	defer db.Close()

	reg, err := registry.New(db, registry.Identity(conf.Admin), logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("registry")
	}

	caller := reg.Admin()
	if *as != "" {
		caller = registry.Identity(*as)
	}

	if err := dispatch(reg, caller, args); err != nil {
		logger.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func dispatch(reg *registry.Registry, caller registry.Identity, args []string) error {
	switch args[0] {
	case "create":
		if len(args) != 2 {
			return fmt.Errorf("create wants an amount")
		}
		amount, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		id, err := reg.CreateSingle(caller, amount)
		if err != nil {
			return err
		}
		fmt.Println(id)
	case "mint":
		if len(args) != 2 {
			return fmt.Errorf("mint wants a comma separated amount list")
		}
		var amounts []uint64
		for _, item := range strings.Split(args[1], ",") {
			amount, err := strconv.ParseUint(strings.TrimSpace(item), 10, 64)
			if err != nil {
				return err
			}
			amounts = append(amounts, amount)
		}
		ids, err := reg.CreateMultiple(caller, amounts)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	case "transfer":
		if len(args) != 3 {
			return fmt.Errorf("transfer wants an id and the current holder")
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		return reg.Transfer(caller, id, registry.Identity(args[2]), caller)
	case "show":
		if len(args) != 2 {
			return fmt.Errorf("show wants an id")
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		details, err := reg.GetRange(id, 1)
		if err != nil {
			return err
		}
		printDetails(details)
	case "range":
		if len(args) != 3 {
			return fmt.Errorf("range wants a start id and a count")
		}
		start, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return err
		}
		count, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return err
		}
		details, err := reg.GetRange(start, count)
		if err != nil {
			return err
		}
		printDetails(details)
	case "journal":
		limit := 100
		if len(args) == 2 {
			l, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			limit = l
		}
		entries, err := reg.ListJournal(limit)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Printf("%s\t%s\t%d\t%s\n", entry.CreatedAt.Format(time.RFC3339Nano), entry.Operation, entry.AssetID, entry.Actor)
		}
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	return nil
}

func runInit(path string, logger zerolog.Logger) {
	if _, err := os.Stat(path); err == nil {
		logger.Fatal().Str("path", path).Msg("configuration already exists")
	}
	conf := registry.Configuration{
		Admin:    uuid.NewString(),
		LogLevel: "info",
	}
	data, err := toml.Marshal(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("configuration encode")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Fatal().Err(err).Msg("configuration dir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("configuration write")
	}
	fmt.Println(conf.Admin)
}

func printDetails(details []*registry.AssetDetail) {
	for _, d := range details {
		status := "active"
		if d.Deactivated {
			status = "deactivated"
		}
		fmt.Printf("%d\t%s\t%d\t%s\t%s\n", d.ID, d.Holder, d.Value, status, d.Notes)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	usr, _ := user.Current()
	return filepath.Join(usr.HomeDir, path[2:])
}
