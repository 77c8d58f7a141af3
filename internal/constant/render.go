package constant

import "time"

const (
	// SlotRadar, SlotBar and SlotDoughnut are the three canvas slot names the
	// renderer binds chart instances to. The embedding client must mount its
	// containers under exactly these names.
	SlotRadar    = "benchmark-radar"
	SlotBar      = "benchmark-bar"
	SlotDoughnut = "composite-doughnut"

	// RenderAttemptCap bounds the number of executed render passes per view.
	// Once exceeded, no further pass is scheduled regardless of future
	// requests, preventing unbounded retry loops when canvases never mount.
	RenderAttemptCap = 5

	// RenderRetryDelay is the delay before retrying a pass that found a slot
	// mounted but unmeasurable.
	RenderRetryDelay = 200 * time.Millisecond

	// FallbackSlotWidth and FallbackSlotHeight are applied inline to a mounted
	// slot whose measured box is zero before giving up on the pass.
	FallbackSlotWidth  = 640
	FallbackSlotHeight = 320
)

const (
	// ExportFileName is the fixed file name the generated report is saved under.
	ExportFileName = "analysis-report.pdf"
)
