package kbModel

// SourceDocument is one ingestion source after its text has been read.
// Id is the short key used in chunk ids ("profile", "resume"); Label is
// the origin label stored in chunk metadata and shown in attributions.
type SourceDocument struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Chunk is one bounded text window of a source document. ChunkId is
// stable per (source, ordinal) so a re-ingest overwrites instead of
// duplicating.
type Chunk struct {
	ChunkId string `json:"chunk_id"` //"<sourceId>_<ordinal>"
	Text    string `json:"content"`
	Source  string `json:"source"`
	Ordinal int    `json:"part"`
}

// Retrieved is one nearest-neighbor hit. Distance is an opaque
// "smaller is closer" signal in the unit-normalized cosine space.
type Retrieved struct {
	Text     string
	Source   string
	Part     int
	Distance float32
}
