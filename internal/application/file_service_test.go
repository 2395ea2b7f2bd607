package application

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/fillfile/internal/ports"
	"github.com/hailam/fillfile/internal/utils"
)

// --- Mock Implementations ---

// MockSizeParser is a mock for ports.SizeParser
type MockSizeParser struct {
	ParseFunc   func(expr string) (utils.FileSize, error)
	ParseCalled bool
}

func (m *MockSizeParser) Parse(expr string) (utils.FileSize, error) {
	m.ParseCalled = true
	if m.ParseFunc != nil {
		return m.ParseFunc(expr)
	}
	// Default behavior if no function is provided
	switch expr {
	case "10kb":
		return utils.FileSize{Amount: 10, Unit: utils.KiloByte}, nil
	case "3b":
		return utils.FileSize{Amount: 3, Unit: utils.Byte}, nil
	case "huge":
		return utils.FileSize{Amount: 1 << 40, Unit: utils.GigaByte}, nil
	case "badsize":
		return utils.FileSize{}, utils.ErrInvalidAmountForSize.New()
	default:
		return utils.FileSize{}, fmt.Errorf("unexpected size expression in mock: %s", expr)
	}
}

// MockSynthesizer is a mock for ports.ContentSynthesizer
type MockSynthesizer struct {
	SynthesizeFunc   func(size uint64) ([]byte, error)
	SynthesizeCalled bool
	CalledWithSize   uint64
}

func (m *MockSynthesizer) Synthesize(size uint64) ([]byte, error) {
	m.SynthesizeCalled = true
	m.CalledWithSize = size
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(size)
	}
	return make([]byte, size), nil
}

// MockSynthesizerFactory is a mock for ports.SynthesizerFactory
type MockSynthesizerFactory struct {
	ForFunc         func(mode ports.ContentMode) (ports.ContentSynthesizer, error)
	MockSynthesizer *MockSynthesizer
	CalledWithMode  ports.ContentMode
}

func (m *MockSynthesizerFactory) For(mode ports.ContentMode) (ports.ContentSynthesizer, error) {
	m.CalledWithMode = mode
	if m.ForFunc != nil {
		return m.ForFunc(mode)
	}
	return m.MockSynthesizer, nil
}

// MockFileWriter is a mock for ports.FileWriter
type MockFileWriter struct {
	WriteFunc      func(path string, data []byte) error
	WriteCalled    bool
	CalledWithPath string
	CalledWithData []byte
}

func (m *MockFileWriter) Write(path string, data []byte) error {
	m.WriteCalled = true
	m.CalledWithPath = path
	m.CalledWithData = data
	if m.WriteFunc != nil {
		return m.WriteFunc(path, data)
	}
	return nil
}

type mocks struct {
	parser  *MockSizeParser
	synth   *MockSynthesizer
	factory *MockSynthesizerFactory
	writer  *MockFileWriter
}

// --- Test Cases ---

func TestFileService_CreateFile(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		setup     func(m *mocks)
		wantBytes uint64
		wantErr   string // exact error text, empty for success
		validate  func(t *testing.T, m *mocks)
	}{
		{
			name:      "Success Zero",
			req:       Request{Path: "out/test.bin", Size: "10kb"},
			wantBytes: 10 * 1024,
			validate: func(t *testing.T, m *mocks) {
				assert.Equal(t, ports.ContentModeZero, m.factory.CalledWithMode)
				assert.Equal(t, uint64(10*1024), m.synth.CalledWithSize)
				assert.Equal(t, "out/test.bin", m.writer.CalledWithPath)
				assert.Len(t, m.writer.CalledWithData, 10*1024)
			},
		},
		{
			name:      "Success Ascii",
			req:       Request{Path: "test.txt", Size: "3b", Ascii: true},
			wantBytes: 3,
			validate: func(t *testing.T, m *mocks) {
				assert.Equal(t, ports.ContentModeASCII, m.factory.CalledWithMode)
			},
		},
		{
			name:      "Success Lorem",
			req:       Request{Path: "test.txt", Size: "3b", Lorem: true},
			wantBytes: 3,
			validate: func(t *testing.T, m *mocks) {
				assert.Equal(t, ports.ContentModeLorem, m.factory.CalledWithMode)
			},
		},
		{
			name:    "Error Incompatible Flags",
			req:     Request{Path: "test.txt", Size: "10kb", Ascii: true, Lorem: true},
			wantErr: "You cannot pass --ascii and --lorem at the same time",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.parser.ParseCalled, "parser must not run after a validation error")
				assert.False(t, m.writer.WriteCalled)
			},
		},
		{
			name:    "Error Directory Path",
			req:     Request{Path: "output", Size: "10kb"},
			wantErr: "Invalid path passed! Directory was passed instead of file",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.parser.ParseCalled)
			},
		},
		{
			name:    "Error Directory Path Checked Before Flags",
			req:     Request{Path: "output", Size: "10kb", Ascii: true, Lorem: true},
			wantErr: "Invalid path passed! Directory was passed instead of file",
		},
		{
			name:    "Error Invalid Size Expression",
			req:     Request{Path: "test.bin", Size: "badsize"},
			wantErr: "Invalid amount passed for the size",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.synth.SynthesizeCalled)
			},
		},
		{
			name:    "Error Size Overflow",
			req:     Request{Path: "test.bin", Size: "huge"},
			wantErr: "Invalid amount passed for the size",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.synth.SynthesizeCalled)
			},
		},
		{
			name: "Error No Synthesizer",
			req:  Request{Path: "test.bin", Size: "3b"},
			setup: func(m *mocks) {
				m.factory.ForFunc = func(ports.ContentMode) (ports.ContentSynthesizer, error) {
					return nil, errors.New("mock factory error")
				}
			},
			wantErr: "mock factory error",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.writer.WriteCalled)
			},
		},
		{
			name: "Error During Synthesis",
			req:  Request{Path: "test.bin", Size: "3b", Lorem: true},
			setup: func(m *mocks) {
				m.synth.SynthesizeFunc = func(uint64) ([]byte, error) {
					return nil, errors.New("mock synthesis error")
				}
			},
			wantErr: "mock synthesis error",
			validate: func(t *testing.T, m *mocks) {
				assert.False(t, m.writer.WriteCalled)
			},
		},
		{
			name: "Error During Write",
			req:  Request{Path: "test.bin", Size: "3b"},
			setup: func(m *mocks) {
				m.writer.WriteFunc = func(string, []byte) error {
					return errors.New("mock write error")
				}
			},
			wantErr: "mock write error",
			validate: func(t *testing.T, m *mocks) {
				assert.True(t, m.writer.WriteCalled)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Create fresh mocks for each test
			synth := &MockSynthesizer{}
			m := &mocks{
				parser:  &MockSizeParser{},
				synth:   synth,
				factory: &MockSynthesizerFactory{MockSynthesizer: synth},
				writer:  &MockFileWriter{},
			}
			if tc.setup != nil {
				tc.setup(m)
			}

			logger, _ := test.NewNullLogger()
			service := NewFileService(m.factory, m.parser, m.writer, logger)

			n, err := service.CreateFile(tc.req)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.wantBytes, n)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, err.Error())
				assert.Zero(t, n)
			}

			if tc.validate != nil {
				tc.validate(t, m)
			}
		})
	}
}

func TestFileService_CreateFile_ErrorKinds(t *testing.T) {
	logger, _ := test.NewNullLogger()
	synth := &MockSynthesizer{}
	service := NewFileService(&MockSynthesizerFactory{MockSynthesizer: synth}, &MockSizeParser{}, &MockFileWriter{}, logger)

	_, err := service.CreateFile(Request{Path: "a.bin", Size: "3b", Ascii: true, Lorem: true})
	assert.True(t, ErrIncompatibleAsciiLorem.Is(err))

	_, err = service.CreateFile(Request{Path: "a", Size: "3b"})
	assert.True(t, ErrDirectoryPassed.Is(err))

	_, err = service.CreateFile(Request{Path: "a.bin", Size: "badsize"})
	assert.True(t, utils.ErrInvalidAmountForSize.Is(err))
}

func TestFileService_CreateFile_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	synth := &MockSynthesizer{}
	service := NewFileService(&MockSynthesizerFactory{MockSynthesizer: synth}, &MockSizeParser{}, &MockFileWriter{}, logger)

	_, err := service.CreateFile(Request{Path: "test.bin", Size: "10kb"})
	require.NoError(t, err)

	levels := map[logrus.Level]int{}
	for _, entry := range hook.AllEntries() {
		levels[entry.Level]++
		assert.Equal(t, "test.bin", entry.Data["path"])
	}
	assert.NotZero(t, levels[logrus.TraceLevel])
	assert.NotZero(t, levels[logrus.DebugLevel])
	assert.Zero(t, levels[logrus.ErrorLevel])

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "Wrote 10 KiB", last.Message)

	hook.Reset()
	_, err = service.CreateFile(Request{Path: "test.bin", Size: "10kb", Ascii: true, Lorem: true})
	require.Error(t, err)
	last = hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, err, last.Data[logrus.ErrorKey])
}
