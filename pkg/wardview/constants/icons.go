package constants

// Glyphs used by the terminal shell.
const (
	Cursor              = "›"   // Marks the selected row
	BreadcrumbSeparator = " / " // Between titles in the header
	Back                = "←"   // Back hint in the footer
	Enter               = "⏎"   // Open hint in the footer
	UpDown              = "↑↓"  // Move hint in the footer
	Warning             = "!"   // Error banner prefix
)
