package main

import (
	"sort"

	"github.com/ansel1/merry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scripts are canned replays covering every removal case, including removing
// a full root and a key that was never there.
var scripts = map[string][]string{
	"films": {
		"+Memento=11/10/2000",
		"+Melvin and Howard=19/09/1980",
		"+Melvin and Howard=21/03/2007",
		"+Mellow Mud=21/09/2016",
		"+Melody=21/03/2007",
		"?Melvin and Howard",
		"?hello",
		"-Melody",
	},
	"letters": {
		"+B=b", "+A=a", "-A", "+C=c", "-C", "+F=f", "-B",
		"+C=c", "+D=d", "+C=c", "+E=e", "-B", "-D", "-C", "-E",
		"+L=l", "+H=h", "+I=i", "+G=g", "-L", "-H", "-I", "-G",
	},
}

func scriptNames() []string {
	var names []string
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var errUnknownScript = merry.New("unknown script")

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [script]...",
		Short:     "Replay the canned scripts (all of them by default)",
		ValidArgs: scriptNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = scriptNames()
			}
			for _, name := range args {
				if err := runScript(log, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runScript(log *logrus.Logger, name string) error {
	script, ok := scripts[name]
	if !ok {
		return merry.Wrap(errUnknownScript).Appendf("%q", name).WithValue("script", name)
	}
	ops, err := parseOps(script)
	if err != nil {
		return err
	}
	log.WithField("script", name).Info("replaying")
	return newReplayer(log, viper.GetBool(cfgCheck)).replay(ops)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run -- op...",
		Short: "Replay ops given as +key[=payload], -key or ?key",
		Long: `Replay ops against an empty tree. Only adds take a payload, so a
remove or search containing "=" is rejected. Put -- before the ops so that removals are not taken for flags:

  bstctl run -- +B=b +A=a +C=c -B ?A`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			return newReplayer(log, viper.GetBool(cfgCheck)).replay(ops)
		},
	}
}
