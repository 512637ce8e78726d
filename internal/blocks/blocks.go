// Package blocks converts assistant-generated message text into an ordered
// sequence of typed content blocks. The input mixes plain prose, standard
// markdown, and a small pseudo-markup vocabulary (<thinking>, <note>, <file>,
// fenced code, pipe tables, bare image URLs). Parsing is a pure function of
// the full message text: no I/O, no shared state, safe for concurrent use.
package blocks

// Kind identifies the type of a parsed block.
type Kind string

const (
	KindText     Kind = "text"
	KindThinking Kind = "thinking"
	KindNote     Kind = "note"
	KindFile     Kind = "file"
	KindTable    Kind = "table"
	KindCode     Kind = "code"
	KindImage    Kind = "image"
)

// Block is one classified unit of parsed content. Kind selects which of the
// metadata pointers is populated; Source always carries the original source
// substring so the input remains recoverable from the block sequence.
type Block struct {
	Kind   Kind   `json:"kind"`
	Source string `json:"source"`

	// Nodes holds the semantic markdown tree for text blocks. A text block
	// emitted as a malformed-tag fallback has nil Nodes; its Source is the
	// raw tag text verbatim.
	Nodes []Node `json:"nodes,omitempty"`

	Thinking *ThinkingData `json:"thinking,omitempty"`
	Note     *NoteData     `json:"note,omitempty"`
	File     *FileData     `json:"file,omitempty"`
	Table    *TableData    `json:"table,omitempty"`
	Code     *CodeData     `json:"code,omitempty"`
	Image    *ImageData    `json:"image,omitempty"`
}

// StepStatus is the progress state of a single thinking step.
type StepStatus string

const (
	StepComplete StepStatus = "complete"
	StepRunning  StepStatus = "running"
	StepPending  StepStatus = "pending"
)

// ThinkingStep is one entry of a thinking trace. Thinking regions only appear
// in completed output, so steps parsed here are always StepComplete; the
// other states exist for renderers that animate live traces.
type ThinkingStep struct {
	Description string     `json:"description"`
	Status      StepStatus `json:"status"`
	File        string     `json:"file,omitempty"`
}

// ThinkingData is the payload of a thinking block.
type ThinkingData struct {
	Steps   []ThinkingStep `json:"steps"`
	Summary string         `json:"summary,omitempty"`
}

// NoteIcon selects the glyph shown on a note callout.
type NoteIcon string

const (
	IconClock     NoteIcon = "clock"
	IconLightbulb NoteIcon = "lightbulb"
	IconInfo      NoteIcon = "info"
)

// NoteData is the payload of a note callout block.
type NoteData struct {
	Title   string   `json:"title,omitempty"`
	Icon    NoteIcon `json:"icon"`
	Content string   `json:"content"`
}

// FileData is the payload of a file card block. Name is required at parse
// time; a <file> tag without one falls back to a plain text block.
type FileData struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// TableData is the payload of a table block. Rows are ragged: each row keeps
// however many cells its source line had, never padded to the header count.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// CodeData is the payload of a fenced code block.
type CodeData struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

// ImageData is the payload of an image block extracted from a bare URL.
type ImageData struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// NodeType identifies a node in the semantic markdown tree.
type NodeType string

const (
	NodeParagraph NodeType = "paragraph"
	NodeHeading   NodeType = "heading"
	NodeList      NodeType = "list"
	NodeItem      NodeType = "item"
	NodeText      NodeType = "text"
	NodeStrong    NodeType = "strong"
	NodeEmphasis  NodeType = "emphasis"
	NodeCodeSpan  NodeType = "codespan"
	NodeBreak     NodeType = "break"
)

// Node is one node of the semantic tree produced for text blocks. Literal
// text is entity-escaped (&, <, > only) before any inline markup is parsed,
// so markup characters from the source can never be reinterpreted.
type Node struct {
	Type     NodeType `json:"type"`
	Level    int      `json:"level,omitempty"`   // heading level, 1-3
	Ordered  bool     `json:"ordered,omitempty"` // list ordering
	Literal  string   `json:"literal,omitempty"` // text and codespan nodes
	Children []Node   `json:"children,omitempty"`
}
