package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/nxthdr/sflow-parser/decoders/sflow"
	"github.com/nxthdr/sflow-parser/format"
	_ "github.com/nxthdr/sflow-parser/format/json"
	_ "github.com/nxthdr/sflow-parser/format/text"
	"github.com/nxthdr/sflow-parser/transport"
	_ "github.com/nxthdr/sflow-parser/transport/file"
	_ "github.com/nxthdr/sflow-parser/transport/kafka"
	"github.com/nxthdr/sflow-parser/utils"
)

var (
	version    = ""
	buildinfos = ""
	AppVersion = "sflow-parser " + version + " " + buildinfos

	ListenAddress = flag.String("listen", ":6343", "sFlow listen address")
	Workers       = flag.Int("workers", 1, "Number of workers per collector")
	QueueSize     = flag.Int("queue", 1000000, "Dispatch queue size")
	Blocking      = flag.Bool("blocking", false, "Block receive instead of dropping on a full queue")

	LogLevel = flag.String("loglevel", "info", "Log level")
	LogFmt   = flag.String("logfmt", "normal", "Log formatter")

	Format    = flag.String("format", "json", fmt.Sprintf("Choose the format (available: %s)", strings.Join(format.GetFormats(), ", ")))
	Transport = flag.String("transport", "file", fmt.Sprintf("Choose the transport (available: %s)", strings.Join(transport.GetTransports(), ", ")))

	ErrCnt = flag.Int("err.cnt", 10, "Maximum decode errors logged per interval")
	ErrInt = flag.Duration("err.int", time.Second*10, "Decode error logging interval")

	Addr = flag.String("addr", ":8080", "HTTP server address")

	ConfigFile = flag.String("config", "", "YAML pipeline configuration file")
	DumpFile   = flag.String("file", "", "Decode a file of concatenated datagrams and exit")

	Version = flag.Bool("v", false, "Print version")
)

func decodeFile(path string, formatter format.FormatInterface, transporter transport.TransportInterface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	datagrams, remaining, err := sflow.DecodeDatagrams(data)
	for _, d := range datagrams {
		key, out, ferr := formatter.Format(d)
		if ferr != nil {
			return ferr
		}
		if serr := transporter.Send(key, out); serr != nil {
			return serr
		}
	}
	if err != nil {
		return fmt.Errorf("%d datagrams decoded, %d bytes left: %w", len(datagrams), remaining, err)
	}
	return nil
}

func main() {
	flag.Parse()

	if *Version {
		fmt.Println(AppVersion)
		os.Exit(0)
	}

	lvl, err := log.ParseLevel(*LogLevel)
	if err != nil {
		log.Fatalf("error parsing log level: %v", err)
	}
	log.SetLevel(lvl)
	if *LogFmt == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	logger := log.StandardLogger()

	listenAddr := *ListenAddress
	workers := *Workers
	formatName := *Format
	transportName := *Transport
	queueSize := *QueueSize
	blocking := *Blocking
	if *ConfigFile != "" {
		f, err := os.Open(*ConfigFile)
		if err != nil {
			log.Fatalf("error opening configuration: %v", err)
		}
		config, err := utils.LoadConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("error loading configuration: %v", err)
		}
		if config.Listen != "" {
			listenAddr = config.Listen
		}
		if config.Workers > 0 {
			workers = config.Workers
		}
		if config.Format != "" {
			formatName = config.Format
		}
		if config.Transport != "" {
			transportName = config.Transport
		}
		if config.QueueSize > 0 {
			queueSize = config.QueueSize
		}
		blocking = blocking || config.Blocking
	}

	formatter, err := format.FindFormat(formatName)
	if err != nil {
		log.Fatalf("error formatter: %v", err)
	}
	transporter, err := transport.FindTransport(transportName)
	if err != nil {
		log.Fatalf("error transporter: %v", err)
	}
	defer transporter.Close()

	if *DumpFile != "" {
		if err := decodeFile(*DumpFile, formatter, transporter); err != nil {
			log.Fatalf("error decoding file: %v", err)
		}
		return
	}

	host, portStr, err := splitHostPort(listenAddr)
	if err != nil {
		log.Fatalf("error parsing listen address: %v", err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		log.Fatalf("error parsing listen port: %v", err)
	}

	pipe := utils.NewSFlowPipe(formatter, transporter, logger)
	mute := utils.NewBatchMute(*ErrInt, *ErrCnt)
	decodeFunc := utils.PromDecoderWrapper(pipe.DecodeFlow, "sflow")
	decodeAndLog := func(msg *utils.Message) error {
		err := decodeFunc(msg)
		if err != nil {
			if muting, skipped := mute.Increment(); muting {
				if skipped > 0 {
					logger.WithFields(log.Fields{"skipped": skipped}).Warn("too many decode errors, muting")
				}
			} else {
				logger.WithFields(log.Fields{"source": msg.Src.Addr().String()}).Error(err)
			}
		}
		return nil
	}

	receiver := utils.NewUDPReceiver(&utils.UDPReceiverConfig{
		QueueSize: queueSize,
		Blocking:  blocking,
	})
	receiver.Logger = logger
	if err := receiver.Start(decodeAndLog, workers, host, int(port)); err != nil {
		log.Fatalf("error starting receiver: %v", err)
	}

	http.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: *Addr}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(err)
		}
	}()

	logger.WithFields(log.Fields{
		"listen":    listenAddr,
		"format":    formatName,
		"transport": transportName,
	}).Info("listening for sFlow datagrams")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("shutting down")
	receiver.Stop()
	srv.Close()
}

func splitHostPort(addr string) (string, string, error) {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("missing port in %q", addr)
	}
	host := strings.Trim(addr[:idx], "[]")
	return host, addr[idx+1:], nil
}
