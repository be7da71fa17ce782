// cmd/ylparams/main.go
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/yl-params/internal/config"
	"github.com/tamzrod/yl-params/internal/device"
	"github.com/tamzrod/yl-params/internal/export"
	emodbus "github.com/tamzrod/yl-params/internal/export/modbus"
	"github.com/tamzrod/yl-params/internal/layout"
	"github.com/tamzrod/yl-params/internal/params"
	"github.com/tamzrod/yl-params/internal/prober"
)

type options struct {
	configPath string
	devicePath string
	logLevel   string

	cfg *config.Config
	log *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "ylparams",
		Short:        "Read factory-provisioned device parameters",
		Long:         "Read MAC addresses, IMEI numbers and hardware identifiers from the factory parameter device",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.load()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "yaml config file")
	pf.StringVar(&opts.devicePath, "device", "", "parameter device path (overrides config)")
	pf.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(newGetCmd(opts), newDumpCmd(opts), newExportCmd(opts))
	return root
}

// --------------------
// Load + validate config
// --------------------

func (o *options) load() error {
	cfg := &config.Config{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
	}

	if o.devicePath != "" {
		cfg.Device.Path = o.devicePath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	o.cfg = cfg
	o.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.Log.Level)}))
	slog.SetDefault(o.log)
	return nil
}

// buildStore wires the prober and the store on the real device.
func (o *options) buildStore() (*params.Store, error) {
	opener := device.Unix{}

	p, err := prober.New(prober.Config{
		Path:          o.cfg.Device.Path,
		MaxRetry:      o.cfg.Device.Retries(),
		RetryInterval: o.cfg.Device.RetryInterval(),
	}, opener, o.log)
	if err != nil {
		return nil, err
	}

	return params.New(params.Config{Path: o.cfg.Device.Path}, opener, p, o.log)
}

func (o *options) initStore() (*params.Store, error) {
	s, err := o.buildStore()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("parameter store init failed: %w", err)
	}
	return s, nil
}

// ---- get ----

func newGetCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <param>...",
		Short: "Print parameters (wlan_mac, bt_mac, imei0, imei1 or a numeric id)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]params.ParamID, 0, len(args))
			for _, a := range args {
				id, err := params.ParseParamID(a)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			s, err := opts.initStore()
			if err != nil {
				return err
			}

			for _, id := range ids {
				v, err := s.Lookup(id)
				if err != nil {
					return fmt.Errorf("%s: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", id, formatParam(id, v, raw))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "hex", false, "print raw field bytes as hex")
	return cmd
}

func formatParam(id params.ParamID, v []byte, raw bool) string {
	if raw {
		return hex.EncodeToString(v)
	}
	switch id {
	case params.WLANMAC, params.BTMAC:
		return layout.FormatMAC(v)
	default:
		return layout.CString(v)
	}
}

// ---- dump ----

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the decoded DEVICE, CONFIGURATION and PRODUCTLINE records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.initStore()
			if err != nil {
				return err
			}
			rec, err := s.Records()
			if err != nil {
				return err
			}
			writeRecords(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func writeRecords(w io.Writer, rec params.Records) {
	d, c, p := &rec.Device, &rec.Configuration, &rec.Productline

	fmt.Fprintln(w, "[device]")
	fmt.Fprintf(w, "  param_version  %x\n", d.ParamVer[:])
	fmt.Fprintf(w, "  date           %x\n", d.Date[:])
	fmt.Fprintf(w, "  comm_models    %s\n", strings.Join(d.CommunicationModels(), ", "))
	fmt.Fprintf(w, "  image_sensor   %s\n", d.ImageSensor())
	fmt.Fprintf(w, "  sim_slots      %d\n", d.SimSlots)
	fmt.Fprintf(w, "  net_carrier    %d\n", d.NetCarrier)

	fmt.Fprintln(w, "[configuration]")
	fmt.Fprintf(w, "  product        %s\n", c.Product())
	fmt.Fprintf(w, "  hw_version     %s\n", c.HardwareVersion())
	fmt.Fprintf(w, "  rf_nv          %s\n", layout.CString(c.HardwareRFNV[:]))
	for _, m := range c.Components() {
		fmt.Fprintf(w, "  component      %s\n", m)
	}

	fmt.Fprintln(w, "[productline]")
	fmt.Fprintf(w, "  serial         %s\n", p.Serial())
	fmt.Fprintf(w, "  imei1          %s\n", layout.CString(p.IMEI1[:]))
	fmt.Fprintf(w, "  imei2          %s\n", layout.CString(p.IMEI2[:]))
	fmt.Fprintf(w, "  dsds_imei      %s\n", layout.CString(p.DSDSIMEI[:]))
	fmt.Fprintf(w, "  wlan_mac       %s\n", p.WLANAddr())
	fmt.Fprintf(w, "  bt_mac         %s\n", p.BTAddr())
	fmt.Fprintf(w, "  soft_versions  %s\n", strings.Join(p.SoftVersions(), ", "))
	fmt.Fprintf(w, "  audio_versions %s\n", strings.Join(p.AudioVersions(), ", "))
	fmt.Fprintf(w, "  cal_status     %d/%d\n", p.ModuleCalStatus1, p.ModuleCalStatus2)
	fmt.Fprintf(w, "  rf_test        %d/%d\n", p.ModuleRFTestStatus1, p.ModuleRFTestStatus2)
	fmt.Fprintf(w, "  battery_test   %d\n", p.BatteryTest)
}

// ---- export ----

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Publish parameters into a Modbus register block until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ec := opts.cfg.Export
			if ec == nil {
				return errors.New("export: no export section in config")
			}

			s, err := opts.buildStore()
			if err != nil {
				return err
			}

			cli, err := emodbus.NewEndpointClient(emodbus.Config{
				Endpoint: ec.Endpoint,
				Timeout:  time.Duration(ec.TimeoutMs) * time.Millisecond,
			})
			if err != nil {
				return fmt.Errorf("export client failed (endpoint=%s): %w", ec.Endpoint, err)
			}
			defer cli.Close()

			e, err := export.New(export.Config{
				UnitID:      ec.UnitID,
				BaseAddress: ec.BaseAddress,
				Interval:    time.Duration(ec.IntervalMs) * time.Millisecond,
				DeviceName:  ec.DeviceName,
			}, s, cli, opts.log)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts.log.Info("export started", "endpoint", ec.Endpoint, "unit_id", ec.UnitID, "base", ec.BaseAddress)
			e.Run(ctx)
			opts.log.Info("export stopped")
			return nil
		},
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
