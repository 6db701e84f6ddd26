package fastq

// Read is a FASTQ read: an identifier line, a sequence, and a quality
// string of equal length (spec §3). Seq and Qual alias the owning Chunk's
// byte slice; they must not be retained past the Chunk's lifetime.
type Read struct {
	ID   []byte
	Seq  []byte
	Qual []byte
}

// Len returns the sequence length.
func (r *Read) Len() int { return len(r.Seq) }
