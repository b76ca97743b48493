package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	studyindex "github.com/USTC-CS-Debate/go-studyindex"
)

// ErrCheckFailed is returned when check finds at least one problem.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes the check command over the pages a generate run writes.
func runCheck(args []string, deps *Dependencies) error {
	f, err := parseCommonFlags(cmdCheck, args, deps.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	s, err := newSession(f, deps)
	if err != nil {
		return withHint(err, "", f.config)
	}

	catalog, err := s.gen.Scan()
	if err != nil {
		return withHint(err, s.root, f.config)
	}

	report, err := studyindex.NewChecker(s.gen.Filesystem()).Check(s.gen.Pages(catalog))
	if err != nil {
		return err
	}

	for _, p := range report.Problems {
		s.log.WithFields(logrus.Fields{
			"page":   p.Page,
			"detail": p.Detail,
		}).Error(string(p.Kind))
	}

	fields := logrus.Fields{
		"pages":    report.Pages,
		"links":    report.Links,
		"problems": len(report.Problems),
	}
	if !report.OK() {
		s.log.WithFields(fields).Warn("Check found problems")
		return withHint(fmt.Errorf("%w: %d problem(s) in %d page(s)", ErrCheckFailed, len(report.Problems), report.Pages), s.root, f.config)
	}
	s.log.WithFields(fields).Info("All pages OK")
	return nil
}
