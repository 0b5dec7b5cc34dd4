package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/closure"
	"github.com/katalvlaran/qcnet/network"
)

// loadCalculus reads the --calculus flag of cmd and parses the file.
func loadCalculus(cmd *cobra.Command) (*calculus.Calculus, error) {
	path, _ := cmd.Flags().GetString("calculus")
	if path == "" {
		return nil, fmt.Errorf("--calculus is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := calculus.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded calculus %s: %d base relations", path, c.Size())

	return c, nil
}

// loadInstances parses one CSP instance file over c.
func loadInstances(c *calculus.Calculus, path string) ([]*network.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	instances, err := network.ParseInstances(c, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("parsed %d instance(s) from %s", len(instances), path)

	return instances, nil
}

// engineFlag reads and parses the --engine flag of cmd.
func engineFlag(cmd *cobra.Command) (closure.Engine, error) {
	name, _ := cmd.Flags().GetString("engine")

	return closure.ParseEngine(name)
}

// instanceName is the part of the info line before the oracle tag,
// used to identify the instance in per-verdict output.
func instanceName(inst *network.Instance) string {
	name := inst.Info
	if inst.Oracle != network.OracleUnknown {
		name = name[:strings.LastIndex(name, ":")]
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "(unnamed)"
	}

	return name
}

// reportVerdict logs one line per instance and returns true on an oracle
// mismatch.
func reportVerdict(inst *network.Instance, consistent bool) bool {
	verdict := "not consistent"
	if consistent {
		verdict = "consistent"
	}
	if !inst.Oracle.Matches(consistent) {
		log.Errorf("%s: expected %s, got %s", instanceName(inst), inst.Oracle, verdict)

		return true
	}
	log.Infof("%s: %s", instanceName(inst), verdict)

	return false
}

// runInstances feeds every instance of every file through decide and
// returns an error if any oracle mismatch occurred, so the process exits
// nonzero exactly when a verdict disagrees with its tag.
func runInstances(cmd *cobra.Command, files []string, decide func(*network.Instance) (bool, error)) error {
	c, err := loadCalculus(cmd)
	if err != nil {
		return err
	}

	mismatches := 0
	for _, path := range files {
		instances, err := loadInstances(c, path)
		if err != nil {
			return err
		}
		for _, inst := range instances {
			consistent, err := decide(inst)
			if err != nil {
				return err
			}
			if reportVerdict(inst, consistent) {
				mismatches++
			}
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d oracle mismatch(es)", mismatches)
	}

	return nil
}
