package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ktbarrett/hdltypes"
)

var allLogic = []hdltypes.Logic{
	hdltypes.Unassigned, hdltypes.Unknown, hdltypes.Zero, hdltypes.One, hdltypes.HighZ,
	hdltypes.WeakUnknown, hdltypes.WeakZero, hdltypes.WeakOne, hdltypes.DontCare,
}

var binaryOps = map[string]func(hdltypes.Logic, hdltypes.Logic) hdltypes.Logic{
	"and":     hdltypes.Logic.And,
	"or":      hdltypes.Logic.Or,
	"xor":     hdltypes.Logic.Xor,
	"resolve": hdltypes.Resolve,
}

var reduceOps = map[string]func(hdltypes.Source[hdltypes.Logic]) hdltypes.Logic{
	"and":  hdltypes.ReduceAnd,
	"or":   hdltypes.ReduceOr,
	"xor":  hdltypes.ReduceXor,
	"nand": hdltypes.ReduceNand,
	"nor":  hdltypes.ReduceNor,
	"xnor": hdltypes.ReduceXnor,
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <and|or|xor|not|resolve>",
		Short: "Print the truth table of an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runTable(w io.Writer, op string) error {
	if op == "not" {
		if a.cfg.TableHeader {
			fmt.Fprintln(w, "in out")
		}
		for _, v := range allLogic {
			fmt.Fprintf(w, "%v  %v\n", v, v.Not())
		}
		return nil
	}
	f, ok := binaryOps[op]
	if !ok {
		return fmt.Errorf("unknown operator %q", op)
	}
	if a.cfg.TableHeader {
		fmt.Fprint(w, " ")
		for _, v := range allLogic {
			fmt.Fprintf(w, " %v", v)
		}
		fmt.Fprintln(w)
	}
	for _, x := range allLogic {
		fmt.Fprintf(w, "%v", x)
		for _, y := range allLogic {
			fmt.Fprintf(w, " %v", f(x, y))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <and|or|xor|not> <a> [b]",
		Short: "Apply an operator element-wise to logic vector literals",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runEval(args[0], args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) runEval(op string, operands []string) (string, error) {
	x, err := a.parse(operands[0])
	if err != nil {
		return "", err
	}
	if op == "not" {
		if len(operands) != 1 {
			return "", fmt.Errorf("not takes one operand")
		}
		return hdltypes.FormatLogic(hdltypes.NotVec(x)), nil
	}
	if len(operands) != 2 {
		return "", fmt.Errorf("%s takes two operands", op)
	}
	y, err := a.parse(operands[1])
	if err != nil {
		return "", err
	}
	var z *hdltypes.Vector[hdltypes.Logic]
	switch op {
	case "and":
		z, err = hdltypes.AndVec(x, y)
	case "or":
		z, err = hdltypes.OrVec(x, y)
	case "xor":
		z, err = hdltypes.XorVec(x, y)
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
	if err != nil {
		return "", err
	}
	a.log.Debug("eval", "op", op, "a", x.String(), "b", y.String())
	return hdltypes.FormatLogic(z), nil
}

func (a *app) reduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <and|or|xor|nand|nor|xnor> <a>",
		Short: "Reduce a logic vector literal to a single value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := reduceOps[args[0]]
			if !ok {
				return fmt.Errorf("unknown operator %q", args[0])
			}
			x, err := a.parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f(x))
			return nil
		},
	}
}

func (a *app) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <value>...",
		Short: "Resolve the values of several drivers on one net",
		RunE: func(cmd *cobra.Command, args []string) error {
			vs := make([]hdltypes.Logic, 0, len(args))
			for _, arg := range args {
				v, err := hdltypes.ParseLogic(arg)
				if err != nil {
					return err
				}
				vs = append(vs, v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hdltypes.ResolveAll(vs...))
			return nil
		},
	}
}

func (a *app) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <literal> <left> <right>",
		Short: "Index a literal with the configured direction and print a slice of it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.runSlice(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) runSlice(lit, left, right string) (string, error) {
	x, err := a.parse(lit)
	if err != nil {
		return "", err
	}
	l, err := strconv.Atoi(left)
	if err != nil {
		return "", fmt.Errorf("left bound: %w", err)
	}
	r, err := strconv.Atoi(right)
	if err != nil {
		return "", fmt.Errorf("right bound: %w", err)
	}
	v, err := x.ConstSlice(l, r)
	if err != nil {
		return "", err
	}
	a.log.Debug("slice", "vector", x.Range().String(), "slice", v.Range().String())
	return hdltypes.FormatLogic(v), nil
}

// parse reads a literal and indexes it in the configured direction.
func (a *app) parse(lit string) (*hdltypes.Vector[hdltypes.Logic], error) {
	x, err := hdltypes.ParseLogicVector(lit)
	if err != nil {
		return nil, err
	}
	left, right := a.cfg.Bounds(x.Length())
	return hdltypes.CollectVectorBounds(left, right, x.Values())
}
