package workbook

import (
	"bytes"
	"errors"
	"fmt"

	"oilevels/config"
	"oilevels/levels"
	"oilevels/logger"

	"github.com/xuri/excelize/v2"
)

// ErrNoDayData means no day sheet matched the selection rule or every
// matching sheet failed to parse. The input workbook is left untouched.
var ErrNoDayData = errors.New("no valid day sheet data in workbook")

// Processor runs the whole pipeline: select day sheets, normalize records,
// fold cumulative snapshots, rank levels and render the Total and Max
// report sheets. A Processor is stateless across calls.
type Processor struct {
	cfg config.LevelsConfig
	log *logger.Logger
}

func NewProcessor(cfg config.LevelsConfig) *Processor {
	if cfg.TopN <= 0 {
		cfg.TopN = 5
	}
	if cfg.TotalSheetName == "" {
		cfg.TotalSheetName = "Total"
	}
	if cfg.MaxSheetName == "" {
		cfg.MaxSheetName = "Max"
	}
	if cfg.HeaderScanDepth <= 0 {
		cfg.HeaderScanDepth = 10
	}
	return &Processor{cfg: cfg, log: logger.L()}
}

// Result carries the processed workbook along with the intermediate state
// side channels (archival, CSV export) want to reuse.
type Result struct {
	Output    []byte
	Snapshots []levels.DaySnapshot
	Universe  []float64
	DaySheets []string
}

// Process takes workbook bytes and returns the same workbook with the two
// report sheets added or replaced. Either the full pipeline succeeds and
// the complete modified buffer is returned, or an error is returned and no
// partial output exists. Sheet-level parse problems are absorbed; a
// corrupt workbook or a workbook with no usable day data is fatal.
func (p *Processor) Process(data []byte) ([]byte, error) {
	result, err := p.Run(data)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Run is Process with the intermediate pipeline state exposed.
func (p *Processor) Run(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	exclude := []string{p.cfg.TotalSheetName, p.cfg.MaxSheetName}
	sheets := DaySheets(f, p.cfg.DayPrefixes, exclude)
	p.log.Info("Selected day sheets", map[string]interface{}{
		"sheets": sheets,
	})

	var days []levels.DaySheet
	for _, sheet := range sheets {
		records, err := ParseDaySheet(f, sheet, p.cfg.HeaderScanDepth)
		if err != nil {
			p.log.Error("Skipping unparseable day sheet", map[string]interface{}{
				"sheet": sheet,
				"error": err.Error(),
			})
			continue
		}
		days = append(days, levels.DaySheet{Label: sheet, Records: records})
	}
	if len(days) == 0 {
		return nil, ErrNoDayData
	}

	snapshots := levels.Aggregate(days)
	universe := levels.StrikeUniverse(days)

	totalGrid := levels.AssembleTotal(snapshots, universe)
	maxGrid := levels.AssembleMax(snapshots, p.cfg.TopN)

	if err := RenderGrid(f, p.cfg.TotalSheetName, totalGrid, RenderOptions{}); err != nil {
		return nil, fmt.Errorf("failed to render %s sheet: %w", p.cfg.TotalSheetName, err)
	}
	if err := RenderGrid(f, p.cfg.MaxSheetName, maxGrid, RenderOptions{
		BoxDataBlocks: true,
		HideIndex:     true,
	}); err != nil {
		return nil, fmt.Errorf("failed to render %s sheet: %w", p.cfg.MaxSheetName, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	p.log.Info("Workbook processed", map[string]interface{}{
		"days":    len(days),
		"strikes": len(universe),
		"bytes":   buf.Len(),
	})
	used := make([]string, len(days))
	for i, day := range days {
		used[i] = day.Label
	}
	return &Result{
		Output:    buf.Bytes(),
		Snapshots: snapshots,
		Universe:  universe,
		DaySheets: used,
	}, nil
}

// Process runs the pipeline with default settings.
func Process(data []byte) ([]byte, error) {
	return NewProcessor(config.DefaultConfig().Levels).Process(data)
}
