package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"schemebridge/internal/config"
	"schemebridge/internal/neterror"
	"schemebridge/internal/storage"

	"github.com/spf13/cobra"
)

var netErrorsCmd = &cobra.Command{
	Use:   "neterrors [code...]",
	Short: "列出网络错误码，或查询指定错误码的名称",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, c := range neterror.Codes() {
				fmt.Fprintf(out, "%d\t%s\n", int32(c), c)
			}
			return nil
		}
		var errs []error
		for _, a := range args {
			n, err := strconv.ParseInt(a, 10, 32)
			if err != nil {
				errs = append(errs, fmt.Errorf("无效的错误码 %q", a))
				continue
			}
			name, ok := neterror.ValidateAndGetName(neterror.Code(n))
			if !ok {
				errs = append(errs, fmt.Errorf("未登记的错误码 %d", n))
			}
			fmt.Fprintf(out, "%d\t%s\n", n, name)
		}
		return errors.Join(errs...)
	},
}

var (
	recordsSession string
	recordsLimit   int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "查看请求处理记录",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer storage.Close(db)

		rows, err := storage.ListRecords(cmd.Context(), db, recordsSession, recordsLimit)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "STARTED\tSCHEME\tMETHOD\tOUTCOME\tSTATUS\tNET_ERROR\tBYTES\tURL")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
				r.StartedAt.Format(time.DateTime), r.Scheme, r.Method, r.Outcome,
				r.Status, netErrorName(r.NetError), r.BodyBytes, r.URL)
		}
		return tw.Flush()
	},
}

func netErrorName(code int32) string {
	if code == 0 {
		return "-"
	}
	return neterror.Code(code).String()
}

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置文件管理",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "写出默认配置",
	Args:  cobra.MaximumNArgs(1),
	// 不依赖已有配置
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "schemebridge.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Write(path, config.NewConfig(), configForce); err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%w，使用 --force 覆盖", err)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "已写入", path)
		return nil
	},
}

func init() {
	recordsCmd.Flags().StringVar(&recordsSession, "session", "", "只显示指定会话")
	recordsCmd.Flags().IntVar(&recordsLimit, "limit", 50, "最多显示的条数，0 表示全部")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "覆盖已存在的文件")
	configCmd.AddCommand(configInitCmd)
}
