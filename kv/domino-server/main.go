package main

import (
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/coordinator"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/server"
	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/storage/standalone_storage"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/kv/util"
	"github.com/pingcap/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/grpc"
)

var (
	configPath string
	storeAddr  string
	statusAddr string
	dbPath     string
	storageArg string
	logLevel   string
)

var (
	gitHash = "None"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "domino-server",
		Short: "Snapshot isolation transaction coordinator and row store",
		RunE:  run,
	}
	registerFlags(rootCmd.Flags())
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerFlags defines the flags overriding config file values.
func registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configPath, "config", "", "config file path")
	flags.StringVar(&storeAddr, "addr", "", "gRPC listen address")
	flags.StringVar(&statusAddr, "status-addr", "", "status and metrics HTTP address")
	flags.StringVar(&dbPath, "path", "", "data directory")
	flags.StringVar(&storageArg, "storage", "", `storage engine, "badger" or "mem"`)
	flags.StringVar(&logLevel, "log-level", "", "log level")
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.SetLevelByString(conf.LogLevel)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if conf.LogFile != "" {
		if err = log.SetOutputByName(conf.LogFile); err != nil {
			return errors.Annotatef(err, "open log file %s", conf.LogFile)
		}
	}
	log.Info("gitHash:", gitHash)
	log.Infof("conf %+v", conf)

	var s storage.Storage
	if conf.Storage == config.StorageMem {
		s = storage.NewMemStorage()
	} else {
		if !util.DirExists(conf.DBPath) {
			log.Infof("data directory %s does not exist, creating", conf.DBPath)
		}
		s = standalone_storage.NewStandAloneStorage(conf)
	}
	if err = s.Start(); err != nil {
		return errors.Annotate(err, "start storage")
	}
	store := mvcc.NewStore(s)
	ora := oracle.NewLocal()
	coord := coordinator.NewLocal(s, store, ora, conf)

	grpcServer := server.NewGRPCServer(server.NewServer(coord, store, ora))
	l, err := net.Listen("tcp", conf.StoreAddr)
	if err != nil {
		return errors.Annotatef(err, "listen on %s", conf.StoreAddr)
	}
	handleSignal(grpcServer)
	go serveStatus(conf.StatusAddr)

	log.Infof("serving on %s", conf.StoreAddr)
	if err = grpcServer.Serve(l); err != nil {
		log.Error(err)
	}
	if err = s.Stop(); err != nil {
		return errors.Annotate(err, "stop storage")
	}
	log.Info("Server stopped.")
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	conf := config.NewDefaultConfig()
	if configPath != "" {
		if !util.FileExists(configPath) {
			return nil, errors.Errorf("config file %s does not exist", configPath)
		}
		var err error
		if conf, err = config.LoadFile(configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		conf.StoreAddr = storeAddr
	}
	if flags.Changed("status-addr") {
		conf.StatusAddr = statusAddr
	}
	if flags.Changed("path") {
		conf.DBPath = dbPath
	}
	if flags.Changed("storage") {
		conf.Storage = storageArg
	}
	if flags.Changed("log-level") {
		conf.LogLevel = logLevel
	}
	return conf, conf.Validate()
}

func serveStatus(addr string) {
	router := mux.NewRouter()
	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	log.Infof("status server listening on %v", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

func handleSignal(grpcServer *grpc.Server) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		sig := <-sigCh
		log.Infof("Got signal [%s] to exit.", sig)
		grpcServer.GracefulStop()
	}()
}
