package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/talkincode/selectshop/config"
	"github.com/talkincode/selectshop/internal/api"
	"github.com/talkincode/selectshop/internal/app"
	"github.com/talkincode/selectshop/internal/webserver"
)

var (
	h       = flag.Bool("h", false, "help usage")
	cfile   = flag.String("c", "selectshop.yml", "config yaml file")
	initdb  = flag.Bool("initdb", false, "drop and recreate the database tables")
	showVer = flag.Bool("v", false, "show version")
)

var version = "dev"

func printHelp() {
	if *h {
		ustr := fmt.Sprintf("selectshop usage:\nUsage: %s -h\nOptions:", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s\n", ustr)
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	appConfig := config.LoadConfig(*cfile)

	application := app.NewApplication(appConfig)
	application.Init(appConfig)
	defer application.Release()

	if *initdb {
		application.InitDb()
	}

	webserver.Init(application)
	api.InitRouter()

	go func() {
		if err := webserver.Listen(); err != nil {
			zap.S().Fatalf("web server error: %s", err)
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	zap.S().Info("shutting down")
}
