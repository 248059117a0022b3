// Reduces a run Result into summary statistics for reporting:
// per-process timing details, averages, throughput and CPU utilization.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim/trace"
)

// ProcessDetail is the exported per-process view of a completed process.
type ProcessDetail struct {
	PID            int64 `json:"pid" yaml:"pid"`
	ArrivalTime    int64 `json:"arrival_time" yaml:"arrival_time"`
	Priority       int64 `json:"priority" yaml:"priority"`
	BurstTime      int64 `json:"burst_time" yaml:"burst_time"`
	StartTime      int64 `json:"start_time" yaml:"start_time"`
	EndTime        int64 `json:"end_time" yaml:"end_time"`
	WaitingTime    int64 `json:"waiting_time" yaml:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time" yaml:"turnaround_time"`
	ResponseTime   int64 `json:"response_time" yaml:"response_time"`
}

// Metrics aggregates statistics about one run for final reporting.
// Every ratio is 0 when its denominator is 0.
type Metrics struct {
	Policy             string  `json:"policy" yaml:"policy"`
	CompletedProcesses int     `json:"completed_processes" yaml:"completed_processes"`
	CPUTotalTime       int64   `json:"cpu_total_time" yaml:"cpu_total_time"`
	IdleTime           int64   `json:"cpu_idle_time" yaml:"cpu_idle_time"`
	Throughput         float64 `json:"throughput" yaml:"throughput"`   // completed / total time
	Utilization        float64 `json:"utilization" yaml:"utilization"` // (total - idle) / total

	AvgWaitingTime    float64 `json:"avg_waiting_time" yaml:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time" yaml:"avg_turnaround_time"`
	AvgResponseTime   float64 `json:"avg_response_time" yaml:"avg_response_time"`
	StdDevWaitingTime float64 `json:"stddev_waiting_time" yaml:"stddev_waiting_time"`
	P90WaitingTime    float64 `json:"p90_waiting_time" yaml:"p90_waiting_time"`
	MaxWaitingTime    int64   `json:"max_waiting_time" yaml:"max_waiting_time"`

	Preemptions     int `json:"preemptions,omitempty" yaml:"preemptions,omitempty"`
	ContextSwitches int `json:"context_switches,omitempty" yaml:"context_switches,omitempty"`

	Details []ProcessDetail     `json:"details" yaml:"details"`
	Slices  []trace.SliceRecord `json:"slices,omitempty" yaml:"slices,omitempty"`
}

// NewMetrics reduces a Result into Metrics.
func NewMetrics(res *Result) *Metrics {
	m := &Metrics{
		Policy:             string(res.Policy),
		CompletedProcesses: len(res.Executed),
		CPUTotalTime:       res.CPUTotalTime,
		IdleTime:           res.IdleTime,
		Details:            make([]ProcessDetail, 0, len(res.Executed)),
	}

	waiting := make([]int64, 0, len(res.Executed))
	turnaround := make([]int64, 0, len(res.Executed))
	response := make([]int64, 0, len(res.Executed))
	for _, p := range res.Executed {
		m.Details = append(m.Details, ProcessDetail{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			Priority:       p.Priority,
			BurstTime:      p.BurstTime,
			StartTime:      p.StartTime,
			EndTime:        p.EndTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
		})
		waiting = append(waiting, p.WaitingTime)
		turnaround = append(turnaround, p.TurnaroundTime)
		response = append(response, p.ResponseTime)
		m.MaxWaitingTime = max(m.MaxWaitingTime, p.WaitingTime)
	}

	if m.CPUTotalTime > 0 {
		m.Throughput = float64(m.CompletedProcesses) / float64(m.CPUTotalTime)
		m.Utilization = float64(m.CPUTotalTime-m.IdleTime) / float64(m.CPUTotalTime)
	}
	m.AvgWaitingTime = CalculateMean(waiting)
	m.AvgTurnaroundTime = CalculateMean(turnaround)
	m.AvgResponseTime = CalculateMean(response)
	m.StdDevWaitingTime = CalculateStdDev(waiting)
	m.P90WaitingTime = CalculatePercentile(waiting, 90)

	if res.Trace != nil {
		summary := trace.Summarize(res.Trace)
		m.Preemptions = summary.Preemptions
		m.ContextSwitches = summary.ContextSwitches
		m.Slices = res.Trace.Slices
	}
	return m
}

// Print displays the per-process table and the aggregate figures.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintf(w, "=== %s ===\n", m.Policy)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Priority", "Burst", "Start", "End", "Wait", "Turnaround", "Response"})
	for _, d := range m.Details {
		table.Append([]string{
			fmt.Sprint(d.PID),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.EndTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnaroundTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", m.AvgWaitingTime),
		fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
		fmt.Sprintf("%.2f", m.AvgResponseTime)})
	table.Render()

	fmt.Fprintf(w, "Completed Processes  : %d\n", m.CompletedProcesses)
	fmt.Fprintf(w, "CPU Total Time       : %d\n", m.CPUTotalTime)
	fmt.Fprintf(w, "CPU Idle Time        : %d\n", m.IdleTime)
	fmt.Fprintf(w, "Throughput           : %.4f processes/unit\n", m.Throughput)
	fmt.Fprintf(w, "CPU Utilization      : %.2f%%\n", m.Utilization*100)
	fmt.Fprintf(w, "Waiting p90 / max    : %.2f / %d\n", m.P90WaitingTime, m.MaxWaitingTime)
	if m.Slices != nil {
		fmt.Fprintf(w, "Preemptions          : %d\n", m.Preemptions)
		fmt.Fprintf(w, "Context Switches     : %d\n", m.ContextSwitches)
	}
}

// PrintGantt renders the recorded slices as a single timeline line,
// e.g. "|0 P1 4|4 P2 8|8 P1 14|". Idle gaps render as "idle".
func (m *Metrics) PrintGantt(w io.Writer) {
	if len(m.Slices) == 0 {
		fmt.Fprintln(w, "(no dispatch trace recorded)")
		return
	}
	var sb strings.Builder
	sb.WriteString("|")
	var clock int64
	for _, s := range m.Slices {
		if s.Start > clock {
			fmt.Fprintf(&sb, "%d idle %d|", clock, s.Start)
		}
		fmt.Fprintf(&sb, "%d P%d %d|", s.Start, s.PID, s.Stop)
		clock = s.Stop
	}
	fmt.Fprintln(w, sb.String())
}

// SaveResults writes the metrics to path. The format follows the extension:
// .yaml/.yml writes YAML, anything else writes indented JSON.
func (m *Metrics) SaveResults(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		data, err = json.MarshalIndent(m, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}

// PrintComparison renders one row per policy for side-by-side analysis.
func PrintComparison(w io.Writer, all []*Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "Throughput", "Utilization", "Total", "Idle"})
	for _, m := range all {
		table.Append([]string{
			m.Policy,
			fmt.Sprintf("%.2f", m.AvgWaitingTime),
			fmt.Sprintf("%.2f", m.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", m.AvgResponseTime),
			fmt.Sprintf("%.4f", m.Throughput),
			fmt.Sprintf("%.2f%%", m.Utilization*100),
			fmt.Sprint(m.CPUTotalTime),
			fmt.Sprint(m.IdleTime),
		})
	}
	table.Render()
}
