// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

// espgpio drives a co-processor pin from the command line, using a local
// gpiochip in place of the co-processor.
//
// The pin is held at the requested level until the command is interrupted,
// after which the line is released.
//
// e.g. to drive pin 5 high as an open-drain output:
//
//	espgpio -chip gpiochip0 -pin 5 -value 1 -open-drain
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
	"github.com/warthog618/go-espgpio"
	"github.com/warthog618/go-espgpio/cdev"
)

type options struct {
	chip      string
	pin       int
	value     int
	openDrain bool
	loglevel  int
}

func parseOptions(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("espgpio", flag.ContinueOnError)
	fs.StringVar(&o.chip, "chip", "gpiochip0", "The gpiochip standing in for the co-processor")
	fs.IntVar(&o.pin, "pin", -1, "The co-processor pin to drive")
	fs.IntVar(&o.value, "value", 0, "The level to drive the pin to, 0 or 1")
	fs.BoolVar(&o.openDrain, "open-drain", false, "Drive the pin as open-drain rather than push-pull")
	fs.IntVar(&o.loglevel, "loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6. Higher values output more information")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.pin < 0 {
		return o, fmt.Errorf("a -pin must be provided")
	}
	if o.value != 0 && o.value != 1 {
		return o, fmt.Errorf("invalid -value %d, must be 0 or 1", o.value)
	}
	if o.loglevel < int(logrus.PanicLevel) || o.loglevel > int(logrus.TraceLevel) {
		return o, fmt.Errorf("invalid -loglevel %d", o.loglevel)
	}
	return o, nil
}

func newLogger(level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(level)
	f := new(prefixed.TextFormatter)
	f.TimestampFormat = "2006-01-02 15:04:05"
	f.FullTimestamp = true
	f.PrefixPadding = 20
	f.SpacePadding = 50
	logger.SetFormatter(f)
	return logger.WithField("prefix", "espgpio")
}

// run drives the pin and holds it until ctx is done.
func run(ctx context.Context, o options, log *logrus.Entry) error {
	drv, err := cdev.New(o.chip)
	if err != nil {
		return err
	}
	defer drv.Close()

	dm := espgpio.DriveModePushPull
	if o.openDrain {
		dm = espgpio.DriveModeOpenDrain
	}
	return espgpio.With(drv, o.pin, func(d *espgpio.DigitalInOut) error {
		if err := d.SwitchToOutput(o.value == 1, dm); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"pin":   o.pin,
			"value": o.value,
			"drive": dm,
		}).Info("pin set")
		<-ctx.Done()
		log.Debug("releasing pin")
		return nil
	}, espgpio.WithLogger(log))
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	log := newLogger(logrus.Level(o.loglevel))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, o, log)
	stop()
	if err != nil {
		log.WithError(err).Error("failed")
		os.Exit(1)
	}
}
