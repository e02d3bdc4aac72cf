package emit

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/vk/trainconfgo/internal/generate"
)

// Summary renders a one-line-per-run table of the generated artifacts.
func Summary(w io.Writer, artifacts []generate.Artifact) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Family", "Nodes", "GPUs", "Steps", "Seq Len", "Batch", "Datasets"})
	table.SetBorder(false)

	for _, a := range artifacts {
		table.Append([]string{
			a.Run.Name,
			a.Family,
			formatInt(a.Trainer.NumNodes),
			formatInt(a.Trainer.Devices),
			formatInt(a.Trainer.MaxSteps),
			formatInt(a.Data.SeqLength),
			formatInt(a.Data.GlobalBatchSize),
			strconv.Itoa(len(a.Data.Paths)),
		})
	}

	table.Render()
}

// formatInt renders an optional value, with "-" standing in for absent.
func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
