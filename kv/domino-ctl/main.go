package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/client"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/server"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

var (
	addr       string
	configPath string
	timeout    time.Duration
	scanLimit  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "domino-ctl",
		Short: "Run single-operation transactions against a domino server",
	}
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "127.0.0.1:20260", "server address")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "client config file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "timeout of the whole command")
	rootCmd.SilenceUsage = true

	scanCmd := &cobra.Command{
		Use:   "scan [start] [end]",
		Short: "Print the rows of a range",
		Args:  cobra.MaximumNArgs(2),
		RunE:  withTxn(scan),
	}
	scanCmd.Flags().IntVar(&scanLimit, "limit", 10, "maximum number of rows to print")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "put <row> <column> <value>",
			Short: "Write one cell",
			Args:  cobra.ExactArgs(3),
			RunE: withTxn(func(ctx context.Context, txn *client.Txn, args []string) error {
				return txn.Put(ctx, []byte(args[0]), []byte(args[1]), []byte(args[2]))
			}),
		},
		&cobra.Command{
			Use:   "delete <row> [column]",
			Short: "Delete one cell, or every cell of a row",
			Args:  cobra.RangeArgs(1, 2),
			RunE: withTxn(func(ctx context.Context, txn *client.Txn, args []string) error {
				if len(args) == 1 {
					return txn.DeleteRow(ctx, []byte(args[0]))
				}
				return txn.Delete(ctx, []byte(args[0]), []byte(args[1]))
			}),
		},
		&cobra.Command{
			Use:   "get <row> [column]",
			Short: "Print one cell, or every cell of a row",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  withTxn(get),
		},
		scanCmd,
		&cobra.Command{
			Use:   "status <start-id>",
			Short: "Print the metadata record of a transaction",
			Args:  cobra.ExactArgs(1),
			RunE:  status,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.NewDefaultConfig(), nil
	}
	return config.LoadFile(configPath)
}

// withTxn runs fn in a transaction and commits it. The transaction is rolled back if fn fails.
func withTxn(fn func(ctx context.Context, txn *client.Txn, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		log.SetLevelByString(conf.LogLevel)
		remote, err := server.Dial(addr)
		if err != nil {
			return err
		}
		defer remote.Close()
		c := client.NewClient(remote, remote, remote, conf)
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		txn, err := c.Begin(ctx)
		if err != nil {
			return err
		}
		if err = fn(ctx, txn, args); err != nil {
			if rbErr := txn.Rollback(ctx); rbErr != nil {
				log.Warnf("rollback of txn %d failed: %v", txn.StartID(), rbErr)
			}
			return errors.Annotatef(err, "txn %d, %s", txn.StartID(), mvcc.Classify(err))
		}
		if err = txn.Commit(ctx); err != nil {
			return errors.Annotatef(err, "commit txn %d, %s", txn.StartID(), mvcc.Classify(err))
		}
		c.WaitFinalized()
		return nil
	}
}

func get(ctx context.Context, txn *client.Txn, args []string) error {
	if len(args) == 2 {
		value, err := txn.Get(ctx, []byte(args[0]), []byte(args[1]))
		if err != nil {
			return err
		}
		if value == nil {
			fmt.Println("(not found)")
			return nil
		}
		fmt.Printf("%q\n", value)
		return nil
	}
	row, err := txn.GetRow(ctx, []byte(args[0]))
	if err != nil {
		return err
	}
	if row == nil {
		fmt.Println("(not found)")
		return nil
	}
	printRow(row)
	return nil
}

func scan(ctx context.Context, txn *client.Txn, args []string) error {
	var start, end []byte
	if len(args) > 0 {
		start = []byte(args[0])
	}
	if len(args) > 1 {
		end = []byte(args[1])
	}
	scanner, err := txn.Scan(ctx, start, end)
	if err != nil {
		return err
	}
	defer scanner.Close()
	rows, err := scanner.NextN(ctx, scanLimit)
	if err != nil {
		return err
	}
	for _, row := range rows {
		printRow(row)
	}
	fmt.Printf("(%d rows)\n", len(rows))
	return nil
}

func printRow(row *mvcc.Row) {
	for _, cell := range row.Cells {
		fmt.Printf("%q %q = %q\n", row.Key, cell.Column, cell.Value)
	}
}

func status(cmd *cobra.Command, args []string) error {
	startID, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Annotatef(err, "invalid start id %q", args[0])
	}
	remote, err := server.Dial(addr)
	if err != nil {
		return err
	}
	defer remote.Close()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	rec, err := remote.GetTransactionStatus(ctx, startID)
	if err != nil {
		return err
	}
	if rec == nil {
		fmt.Println("(no record)")
		return nil
	}
	fmt.Println(rec)
	return nil
}
