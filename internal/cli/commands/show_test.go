package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func timeNowDate() string {
	return time.Now().Format("2006-01-02")
}

const sampleLog = "+ 09:00 10:00 --:-- 1:00 work\n- 10:15 10:30 --:-- 0:15 break\n"

// writeFixtures lays out a temp log dir with a config file pointing at it
// and returns the config path, the log dir and the report path.
func writeFixtures(t *testing.T) (configPath, logDir, reportPath string) {
	t.Helper()
	dir := t.TempDir()
	logDir = filepath.Join(dir, "mylog")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("creating log dir: %v", err)
	}
	reportPath = filepath.Join(dir, "report.html")
	configPath = filepath.Join(dir, "config.yaml")
	content := "log_dir: " + logDir + "\nreport_path: " + reportPath + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return configPath, logDir, reportPath
}

func writeDay(t *testing.T, logDir, name, content string) string {
	t.Helper()
	path := filepath.Join(logDir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing log file: %v", err)
	}
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	ExitCode = 0
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestShowCommandSingleFile(t *testing.T) {
	configPath, logDir, reportPath := writeFixtures(t)
	logPath := writeDay(t, logDir, "2024-05-10.mylog", sampleLog)

	stdout, stderr, err := execute(t, NewShowCommand(), logPath, "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0 (stderr: %s)", ExitCode, stderr)
	}

	for _, want := range []string{logPath, "total:", "By type:", "By label:", "work"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "type-good") {
		t.Error("report missing timeline blocks")
	}
}

func TestShowCommandTodaySelector(t *testing.T) {
	configPath, logDir, _ := writeFixtures(t)
	// The selector resolves against the real current date.
	today := writeDay(t, logDir, timeNowDate()+".mylog", sampleLog)

	stdout, stderr, err := execute(t, NewShowCommand(), "today", "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}
	if !strings.Contains(stdout, today) {
		t.Errorf("stdout should name the resolved path %q:\n%s", today, stdout)
	}
}

func TestShowCommandMissingFile(t *testing.T) {
	configPath, logDir, reportPath := writeFixtures(t)

	_, stderr, err := execute(t, NewShowCommand(),
		filepath.Join(logDir, "absent.mylog"), "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
	if !strings.Contains(stderr, "missing") {
		t.Errorf("stderr = %q, want a missing-file error", stderr)
	}
	// The (empty) report is still written.
	if _, err := os.Stat(reportPath); err != nil {
		t.Errorf("report not written: %v", err)
	}
}

func TestShowCommandIgnoreMissing(t *testing.T) {
	configPath, logDir, _ := writeFixtures(t)

	_, stderr, err := execute(t, NewShowCommand(),
		filepath.Join(logDir, "absent.mylog"), "--config", configPath, "--ignore-missing")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0 (stderr: %s)", ExitCode, stderr)
	}
	if strings.Contains(stderr, "missing") {
		t.Errorf("stderr = %q, want no missing-file error", stderr)
	}
}

func TestShowCommandDurationMismatchStillReports(t *testing.T) {
	configPath, logDir, _ := writeFixtures(t)
	logPath := writeDay(t, logDir, "bad.mylog", "+ 09:00 10:00 --:-- 0:45 work\n")

	stdout, stderr, err := execute(t, NewShowCommand(), logPath, "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
	if !strings.Contains(stderr, "incorrect duration") {
		t.Errorf("stderr = %q, want a duration mismatch error", stderr)
	}
	// The declared duration still aggregates.
	if !strings.Contains(stdout, "0:45") {
		t.Errorf("stdout should carry the declared 0:45 total:\n%s", stdout)
	}
}

func TestShowCommandMultipleDays(t *testing.T) {
	configPath, logDir, _ := writeFixtures(t)
	day1 := writeDay(t, logDir, "2024-05-09.mylog", sampleLog)
	day2 := writeDay(t, logDir, "2024-05-10.mylog", sampleLog)

	stdout, stderr, err := execute(t, NewShowCommand(), day1, day2, "--config", configPath)
	if err != nil {
		t.Fatalf("Execute() error = %v (stderr: %s)", err, stderr)
	}
	if !strings.Contains(stdout, "Summary:") {
		t.Errorf("stdout missing summary:\n%s", stdout)
	}
	// Without --long, no per-file sections are printed.
	if strings.Contains(stdout, day1) {
		t.Errorf("per-file output present without --long:\n%s", stdout)
	}

	stdout, _, err = execute(t, NewShowCommand(), day1, day2, "--config", configPath, "--long")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, day1) || !strings.Contains(stdout, day2) {
		t.Errorf("--long should print each file's section:\n%s", stdout)
	}
}

func TestShowCommandUseNow(t *testing.T) {
	configPath, logDir, _ := writeFixtures(t)
	// The last entry is open-ended (zero-length), so --use-now extends it.
	logPath := writeDay(t, logDir, "open.mylog", "u 00:00 00:01 --:-- 0:01 boot\n")

	stdout, _, err := execute(t, NewShowCommand(), logPath, "--config", configPath, "--use-now")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.Count(stdout, "current time:"); got != 1 {
		t.Errorf("current time printed %d times, want 1:\n%s", got, stdout)
	}
}

func TestShowCommandRefreshTime(t *testing.T) {
	configPath, logDir, reportPath := writeFixtures(t)
	logPath := writeDay(t, logDir, "2024-05-10.mylog", sampleLog)

	_, _, err := execute(t, NewShowCommand(), logPath, "--config", configPath, "--refresh-time", "30")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), `content="30"`) {
		t.Error("report missing meta refresh tag")
	}
}
