package display

// Surface is a fixed-geometry character panel. Implementations clip
// rows that run past the panel width and never wrap.
type Surface interface {
	WriteRow(row int, text string) error
	Clear() error
}

// Panel geometries fitted to the monitor.
const (
	ZoneCols = 16
	ZoneRows = 2

	StatusCols = 20
	StatusRows = 4
)
