package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"scene-editor/internal/commands"
	"scene-editor/internal/primitives"
)

// RegisterCommands binds the panel operations to console subcommands. Output lines go to out.
func RegisterCommands(ctx context.Context, reg *commands.Registry, p *Panel, out func(string)) {
	addFS := commands.NewFlagSet("add")
	addType := addFS.String("type", "", "sphere or box")
	reg.Register("add", "add --type sphere|box", addFS, func() error {
		name := *addType
		if name == "" && addFS.NArg() > 0 {
			name = addFS.Arg(0)
		}
		k, err := primitives.ParseKind(name)
		if err != nil {
			return err
		}
		_, err = p.AddObject(ctx, k)
		return err
	})

	delFS := commands.NewFlagSet("delete")
	delRow := delFS.Int("row", -1, "row to delete (default: selected)")
	reg.Register("delete", "delete [--row N]", delFS, func() error {
		row := *delRow
		if row < 0 {
			row = p.Selected()
		}
		return p.DeleteObject(ctx, row)
	})

	selFS := commands.NewFlagSet("select")
	reg.Register("select", "select N", selFS, func() error {
		if selFS.NArg() != 1 {
			return fmt.Errorf("select: want one row number")
		}
		row, err := strconv.Atoi(selFS.Arg(0))
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		if _, err := p.Registry().At(row); err != nil {
			return err
		}
		p.Select(row)
		return nil
	})

	showFS := commands.NewFlagSet("show")
	showRow := showFS.Int("row", -1, "row to edit (default: selected)")
	reg.Register("show", "show [--row N]", showFS, func() error {
		row := *showRow
		if row < 0 {
			row = p.Selected()
		}
		if err := p.ShowInfo(row); err != nil {
			return err
		}
		for _, line := range p.Form().Lines() {
			out(line)
		}
		return nil
	})

	setFS := commands.NewFlagSet("set")
	setCell := setFS.String("cell", "", "r,c=value")
	setColor := setFS.String("color", "", "r,g,b,a")
	setSize := setFS.String("size", "", "radius or x,y,z")
	reg.Register("set", "set [--cell r,c=v] [--color r,g,b,a] [--size a[,b,c]]", setFS, func() error {
		return p.Form().Set(*setCell, *setColor, *setSize)
	})

	reg.Register("update", "update", commands.NewFlagSet("update"), func() error {
		return p.UpdateInfo(ctx)
	})

	reg.Register("list", "list", commands.NewFlagSet("list"), func() error {
		names := p.Registry().Names()
		if names.Len() == 0 {
			out("(empty scene)")
		}
		for i := 0; i < names.Len(); i++ {
			mark := " "
			if i == p.Selected() {
				mark = "*"
			}
			out(fmt.Sprintf("%s%d %s", mark, i, names.Item(i)))
		}
		return nil
	})

	reg.Register("save", "save", commands.NewFlagSet("save"), func() error {
		return p.Save(ctx)
	})

	reg.Register("newscene", "newscene", commands.NewFlagSet("newscene"), func() error {
		return p.ClearScene(ctx)
	})

	reg.Register("help", "help", commands.NewFlagSet("help"), func() error {
		for _, line := range reg.Help() {
			out(line)
		}
		return nil
	})
}

// Lines renders the form for the console.
func (f *Form) Lines() []string {
	if f.Kind == "" {
		return []string{"(nothing shown)"}
	}
	lines := make([]string, 0, 6)
	for r := 0; r < 4; r++ {
		lines = append(lines, "matrix: "+strings.Join(f.Matrix[r*4:r*4+4], " "))
	}
	lines = append(lines, "color: "+strings.Join(f.Color[:], " "))
	lines = append(lines, "size: "+strings.Join(f.Size[:f.SizeFields()], " "))
	return lines
}

// Set edits form fields from console syntax. Empty arguments are left alone.
func (f *Form) Set(cell, rgba, size string) error {
	if f.Kind == "" && (cell != "" || rgba != "" || size != "") {
		return fmt.Errorf("set: run show first")
	}
	if cell != "" {
		pos, val, ok := strings.Cut(cell, "=")
		rs, cs, ok2 := strings.Cut(pos, ",")
		if !ok || !ok2 {
			return fmt.Errorf("set: --cell wants r,c=value")
		}
		r, err1 := strconv.Atoi(rs)
		c, err2 := strconv.Atoi(cs)
		if err1 != nil || err2 != nil || r < 0 || r > 3 || c < 0 || c > 3 {
			return fmt.Errorf("set: bad cell %q", pos)
		}
		f.Matrix[r*4+c] = val
	}
	if rgba != "" {
		parts := strings.Split(rgba, ",")
		if len(parts) != 4 {
			return fmt.Errorf("set: --color wants 4 channels")
		}
		copy(f.Color[:], parts)
	}
	if size != "" {
		parts := strings.Split(size, ",")
		if len(parts) != f.SizeFields() {
			return fmt.Errorf("set: --size wants %d value(s) for a %s", f.SizeFields(), f.Kind)
		}
		copy(f.Size[:], parts)
	}
	return nil
}
