package main

import (
	"os"

	"github.com/sirupsen/logrus"

	_ "github.com/togtokh-dev/cloud-ev/cmd/connector"
	_ "github.com/togtokh-dev/cloud-ev/cmd/invoice"
	_ "github.com/togtokh-dev/cloud-ev/cmd/park"
	_ "github.com/togtokh-dev/cloud-ev/cmd/parks"
	_ "github.com/togtokh-dev/cloud-ev/cmd/price"
	"github.com/togtokh-dev/cloud-ev/cmd/root"
	_ "github.com/togtokh-dev/cloud-ev/cmd/session"
	_ "github.com/togtokh-dev/cloud-ev/cmd/version"
	_ "github.com/togtokh-dev/cloud-ev/cmd/watch"
)

func main() {
	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
