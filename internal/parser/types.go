package parser

// SeverityMarker é a letra que abre uma mensagem do pylint no formato texto
// (ex: "C0114", "W0611", "E1101").
type SeverityMarker byte

const (
	Convention SeverityMarker = 'C'
	Warning    SeverityMarker = 'W'
	Error      SeverityMarker = 'E'
)

// Markers lista as categorias mantidas por FilterSeverity.
var Markers = []SeverityMarker{Convention, Warning, Error}
