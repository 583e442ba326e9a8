package main

import (
	"context"
	"flag"
	"os"

	"github.com/HuXin0817/othello/console/internal/config"
	"github.com/HuXin0817/othello/console/internal/logic"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile = flag.String("f", "etc/console.yaml", "the config file")
	scan       = flag.Bool("Scan", false, "list every legal square for both tokens")
	json       = flag.Bool("Json", false, "print a snapshot of the board")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	c.Scan = c.Scan || *scan
	c.Json = c.Json || *json

	logx.MustSetup(c.Log)
	defer logx.Close()

	l, err := logic.NewBoardLogic(context.Background(), c, os.Stdout, os.Stderr)
	if err != nil {
		logx.Error(err)
		os.Exit(1)
	}

	if err = l.Run(); err != nil {
		logx.Error(err)
		os.Exit(1)
	}
}
