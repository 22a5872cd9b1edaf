package main

import (
	"strings"

	"github.com/ansel1/merry"
	"github.com/sirupsen/logrus"

	"bst_code/bst"
)

type film = bst.Record[string, string]

type opKind byte

const (
	opAdd    opKind = '+'
	opRemove opKind = '-'
	opSearch opKind = '?'
)

func (k opKind) String() string {
	switch k {
	case opAdd:
		return "add"
	case opRemove:
		return "remove"
	case opSearch:
		return "search"
	}
	return "unknown"
}

// op is one step of a replay, written as +key, -key or ?key. Only adds take
// an =payload.
type op struct {
	kind    opKind
	key     string
	payload string
}

var errBadOp = merry.New("bad op")

// errCorrupt means the tree failed validation; this is a bug in package bst,
// never a user error.
var errCorrupt = merry.New("tree failed validation")

func badOp(s string) error {
	return merry.Wrap(errBadOp).Appendf("%q", s).WithValue("op", s)
}

func parseOp(s string) (op, error) {
	if len(s) < 2 {
		return op{}, badOp(s)
	}
	o := op{kind: opKind(s[0])}
	switch o.kind {
	case opAdd, opRemove, opSearch:
	default:
		return op{}, badOp(s)
	}
	var hasPayload bool
	o.key, o.payload, hasPayload = strings.Cut(s[1:], "=")
	if o.key == "" || (hasPayload && o.kind != opAdd) {
		return op{}, badOp(s)
	}
	return o, nil
}

func parseOps(args []string) ([]op, error) {
	var ops = make([]op, 0, len(args))
	for _, a := range args {
		o, err := parseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

type replayer struct {
	tree  *bst.Tree[film]
	log   *logrus.Logger
	check bool
}

func newReplayer(log *logrus.Logger, check bool) *replayer {
	return &replayer{
		tree:  bst.New[film](),
		log:   log,
		check: check,
	}
}

// step applies o. Duplicate adds and missing keys are logged, not returned:
// only a tree that fails validation stops a replay.
func (r *replayer) step(o op) error {
	f := bst.NewRecord(o.key, o.payload)
	var result film
	var err error
	switch o.kind {
	case opAdd:
		result, err = r.tree.Add(f)
	case opRemove:
		result, err = r.tree.Remove(f)
	case opSearch:
		result, err = r.tree.Search(f)
	}

	entry := r.log.WithFields(logrus.Fields{
		"op":  o.kind.String(),
		"key": o.key,
	})
	if err != nil {
		entry.WithError(err).Info("no change")
	} else {
		entry.WithField("element", result.FullString()).Info("ok")
	}
	// renderings walk the whole tree; only build them when they are logged
	if r.log.IsLevelEnabled(logrus.DebugLevel) {
		entry.WithFields(logrus.Fields{
			"ordered": r.tree.String(),
			"stats":   r.tree.Stats(),
		}).Debug("tree")
	}
	if r.log.IsLevelEnabled(logrus.TraceLevel) {
		r.log.Trace("structure:\n" + r.tree.Structure())
	}

	if r.check && !r.tree.Validate() {
		return merry.Wrap(errCorrupt).WithValue("structure", r.tree.Structure())
	}
	return nil
}

func (r *replayer) replay(ops []op) error {
	for _, o := range ops {
		if err := r.step(o); err != nil {
			return err
		}
	}
	r.log.WithField("ordered", r.tree.String()).Info(r.tree.Stats())
	return nil
}
