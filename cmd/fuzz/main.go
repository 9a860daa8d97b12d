package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HuXin0817/dots-and-boxes-ai/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-ai/pkg/pprof"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/fuzz.yaml", "the config file")

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	if err := c.Override(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := c.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logx.MustSetup(c.Log)
	defer logx.Close()

	if model.NewConfig(c.Pprof) == model.On {
		pprof.Start(c.PprofAddr)
	}

	bar := model.NewBar(c.Games, fmt.Sprintf("%s vs %s %dx%d", c.Player1, c.Player2, c.Width, c.Height))
	tally, err := Fuzz(c, os.Stdout, bar)
	bar.Close()
	fmt.Println()
	fmt.Println(tally)

	if err != nil {
		logx.Error(err)
		logx.Close()
		os.Exit(1)
	}
	if tally.Failures > 0 {
		logx.Close()
		os.Exit(1)
	}
}
