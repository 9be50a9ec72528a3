package mazecmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mazegen/pkg/diffutil"
	"mazegen/pkg/errorutil"
	"mazegen/pkg/graph"
	"mazegen/pkg/maze"
)

// RenderCmd 定义子命令 "render"：把迷宫文件画成字符画
func RenderCmd() *cobra.Command {
	style := maze.StyleUnicode

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "把迷宫画成字符画(入口在左上角，出口在右下角)",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(cmd, "style")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := loadMaze(cmd, inputPath(args))
			if err != nil {
				return err
			}
			if err := m.Render(cmd.OutOrStdout(), cfg.RenderStyle()); err != nil {
				return errorutil.NewExitError(errorutil.CodeIOError, err)
			}
			return nil
		},
	}

	cmd.Flags().Var(&style, "style", "字符画风格: ascii|unicode")
	return cmd
}

// CheckCmd 定义子命令 "check"：校验迷宫文件是否是完美迷宫
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "校验迷宫文件格式，并检查是否是完美迷宫",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMaze(cmd, inputPath(args))
			if err != nil {
				return err
			}
			if err := m.Verify(); err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "迷宫校验失败", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "maze %d x %d: %s cells, %s passages, perfect\n",
				m.Rows, m.Cols, humanize.Comma(int64(m.NumCells())), humanize.Comma(int64(m.OpenWalls())))
			return nil
		},
	}
	return cmd
}

// DotCmd 定义子命令 "dot"：导出通路图，或者用 --check 检查一份 DOT 通路图
func DotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot [file|-]",
		Short: "把迷宫的通路图导出为 Graphviz DOT",
		Long: `把迷宫的通路图导出为 Graphviz DOT
每个格子一个节点(c<编号>)，每面打通的墙一条无向边
加 --check 时输入是 DOT 文本，输出节点数、边数、死胡同数，不是生成树时退出码为 66

Examples:
  mazegen dot maze.txt | dot -Tsvg > maze.svg
  mazegen dot maze.txt | mazegen dot --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if check, _ := cmd.Flags().GetBool("check"); check {
				return checkDOT(cmd, inputPath(args))
			}

			m, err := loadMaze(cmd, inputPath(args))
			if err != nil {
				return err
			}
			g, err := graph.ToDOT(m)
			if err != nil {
				return errorutil.NewExitError(errorutil.CodeInternalErr, err)
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), g.String()); err != nil {
				return errorutil.NewExitError(errorutil.CodeIOError, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("check", "c", false, "输入是 DOT 文本，检查它是否是一棵生成树")
	return cmd
}

// checkDOT 解析 DOT 通路图并打印摘要
func checkDOT(cmd *cobra.Command, path string) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	g, err := graph.ParseDOT(data)
	if err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "DOT 数据无效", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), graph.Summary(g))
	if ok, where := graph.IsTree(g); !ok {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
			fmt.Sprintf("通路图不是生成树: %s", where), graph.ErrNotTree)
	}
	return nil
}

// DiffCmd 定义子命令 "diff"：左右对比两个迷宫的字符画
func DiffCmd() *cobra.Command {
	style := maze.StyleASCII

	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "左右对比两个迷宫的字符画，有差异时退出码为 1",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
					"用法: mazegen diff <left> <right>", nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := loadMaze(cmd, args[0])
			if err != nil {
				return err
			}
			right, err := loadMaze(cmd, args[1])
			if err != nil {
				return err
			}

			lines := diffutil.CompareMultiline(left.RenderString(style), right.RenderString(style))
			fmt.Fprintln(cmd.OutOrStdout(), diffutil.FormatSideBySide(lines, args[0], args[1]))
			if diffutil.Changed(lines) {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeDiffFound, "迷宫不同", nil)
			}
			return nil
		},
	}

	cmd.Flags().Var(&style, "style", "字符画风格: ascii|unicode")
	return cmd
}
