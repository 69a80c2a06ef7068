package objects

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/utils"
	"github.com/klauspost/compress/zlib"
)

// Codec frames payloads as "<kind> <size>\0<payload>", hashes the framed bytes
// and compresses them for storage. The compression level only changes the
// stored bytes, never the hash.
type Codec struct {
	level int
}

// DefaultCodec compresses with the zlib default level.
var DefaultCodec = &Codec{level: zlib.DefaultCompression}

// NewCodec returns a codec compressing at level (zlib.HuffmanOnly..zlib.BestCompression).
func NewCodec(level int) (*Codec, error) {
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		return nil, fmt.Errorf("invalid compression level %d: must be between %d and %d",
			level, zlib.HuffmanOnly, zlib.BestCompression)
	}
	return &Codec{level: level}, nil
}

// Level returns the configured compression level.
func (c *Codec) Level() int {
	return c.level
}

// Encode frames content as a blob and returns its hash and the compressed bytes ready for ObjectStore.Write.
func (c *Codec) Encode(content []byte) (string, []byte, error) {
	return c.EncodeObject(utils.BlobObjectType, content)
}

// EncodeObject frames payload with the header of kind, hashes and compresses it.
func (c *Codec) EncodeObject(kind utils.ObjectType, payload []byte) (string, []byte, error) {
	if !kind.IsValid() {
		return "", nil, fmt.Errorf("%w: unknown object type %q", ErrFormat, kind)
	}

	data := utils.BuildObjectData(payload, kind)
	compressed, err := c.Compress(data)
	if err != nil {
		return "", nil, err
	}

	return utils.HashData(data), compressed, nil
}

// Compress zlib-compresses data at the codec level.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buffer, c.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress object: %w", err)
	}

	// Close flushes the final block and the adler32 trailer
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress object: %w", err)
	}

	return buffer.Bytes(), nil
}

// Decompress inflates stored object bytes. Any malformed or truncated stream is ErrCorruption.
func Decompress(compressed []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruption, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read decompressed data: %w", ErrCorruption, err)
	}

	return data, nil
}

// Decode splits framed object data at the first NUL byte and validates the header.
func Decode(data []byte) (utils.ObjectType, []byte, error) {
	nullByteIndex := bytes.IndexByte(data, constants.NullByte)
	if nullByteIndex == -1 {
		return "", nil, fmt.Errorf("%w: no null byte found", ErrFormat)
	}

	header := data[:nullByteIndex]
	payload := data[nullByteIndex+1:]

	separatorIndex := bytes.IndexByte(header, constants.HeaderSeparator)
	if separatorIndex == -1 {
		return "", nil, fmt.Errorf("%w: malformed header %q", ErrFormat, header)
	}

	kind, err := utils.ParseObjectType(string(header[:separatorIndex]))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	size, err := parseSize(header[separatorIndex+1:])
	if err != nil {
		return "", nil, fmt.Errorf("%w: malformed header %q: %w", ErrFormat, header, err)
	}

	if size != len(payload) {
		return "", nil, fmt.Errorf("%w: header declares %d bytes, payload has %d", ErrFormat, size, len(payload))
	}

	return kind, payload, nil
}

// parseSize accepts plain decimal digits only, without sign or leading zeros.
func parseSize(raw []byte) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing size")
	}
	if len(raw) > 1 && raw[0] == '0' {
		return 0, fmt.Errorf("size has leading zero")
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("size is not decimal")
		}
	}
	return strconv.Atoi(string(raw))
}
