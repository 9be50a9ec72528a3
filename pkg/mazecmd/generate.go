package mazecmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mazegen/pkg/errorutil"
	"mazegen/pkg/initutil"
	"mazegen/pkg/logutil"
	"mazegen/pkg/maze"
)

const generateUsage = "generate <rows> <cols> [outputPath|-]"

// parseSize 解析行列参数，非整数或者小于 1 都按用法错误处理
func parseSize(rowsArg, colsArg string) (int, int, error) {
	rows, err := strconv.Atoi(rowsArg)
	if err != nil {
		return 0, 0, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "rows 必须是整数", err)
	}
	cols, err := strconv.Atoi(colsArg)
	if err != nil {
		return 0, 0, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "cols 必须是整数", err)
	}
	if _, err := maze.CheckSize(rows, cols); err != nil {
		return 0, 0, errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
	}
	return rows, cols, nil
}

// writeMaze 按格式写出迷宫
func writeMaze(w io.Writer, m *maze.Maze, format string) error {
	if format == initutil.FormatJSON {
		return m.EncodeJSON(w, true)
	}
	return m.Encode(w)
}

// GenerateCmd 定义子命令 "generate"
func GenerateCmd() *cobra.Command {
	format := formatValue(initutil.FormatText)

	cmd := &cobra.Command{
		Use:   generateUsage,
		Short: "生成随机完美迷宫",
		Long: `生成 rows x cols 的随机完美迷宫(任意两格之间有且只有一条路径)

输出格式(text):
  第一行 "maze <rows> <cols>"
  之后按行优先每个格子一行 "<右墙> <下墙>"，1 表示有墙，0 表示打通

Examples:
  mazegen generate 10 20 maze.txt
  mazegen generate 5 5 -s 42 -f json -r`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
					fmt.Sprintf("参数个数错误: %d, 用法: mazegen %s", len(args), generateUsage), nil)
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, "seed", "format")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := parseSize(args[0], args[1])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var opts []maze.Option
			if cfg.Seed != 0 {
				opts = append(opts, maze.WithSeed(cfg.Seed))
			}
			m, _, err := maze.NewGenerator(opts...).Generate(rows, cols)
			if err != nil {
				if errors.Is(err, maze.ErrInvalidSize) {
					return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
				}
				return errorutil.NewExitError(errorutil.CodeInternalErr, err)
			}

			// 生成完成后才打开输出文件
			out := cmd.OutOrStdout()
			path := stdioPath
			if len(args) == 3 {
				path = args[2]
			}
			if path != stdioPath {
				f, err := os.Create(path)
				if err != nil {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeOutputOpen,
						fmt.Sprintf("无法打开输出文件 %s", path), err)
				}
				defer f.Close()
				out = f
			}

			if err := writeMaze(out, m, cfg.Format); err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写入迷宫失败", err)
			}
			if f, ok := out.(*os.File); ok && path != stdioPath {
				if err := f.Close(); err != nil {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写入迷宫失败", err)
				}
				logutil.Info("迷宫已写入 %s (%s 个格子)", path, humanize.Comma(int64(m.NumCells())))
			}

			if render, _ := cmd.Flags().GetBool("render"); render {
				if err := m.Render(cmd.ErrOrStderr(), cfg.RenderStyle()); err != nil {
					return errorutil.NewExitError(errorutil.CodeIOError, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint64P("seed", "s", 0, "随机种子(0 表示每次随机)")
	cmd.Flags().VarP(&format, "format", "f", "输出格式: text|json")
	cmd.Flags().BoolP("render", "r", false, "同时把字符画打印到标准错误")
	return cmd
}
