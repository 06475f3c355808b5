package dict

// MultiFileSink creates a WritableSink for each logical file name a writer
// needs to emit. The V2 writer (C8) uses it to produce one header file and
// N value files; the V1 writer needs only a single WritableSink since its
// container is a single buffer.
type MultiFileSink interface {
	Create(name string) (WritableSink, error)
}
