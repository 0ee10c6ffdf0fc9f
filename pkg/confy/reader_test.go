package confy

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lc/confy/internal/mocks"
)

type ReaderTestSuite struct {
	suite.Suite
	fs       *mocks.MockOsFS
	file     *mocks.MockFile
	provider *Provider[exampleConfig]
}

func (s *ReaderTestSuite) SetupTest() {
	s.fs = &mocks.MockOsFS{}
	s.file = &mocks.MockFile{}
	s.provider = New[exampleConfig](WithFS[exampleConfig](s.fs))
	s.fs.On("Open", "config").Return(s.file, nil)
}

func (s *ReaderTestSuite) TestReadFailure() {
	s.file.On("Read", mock.Anything).Return(0, errors.New("input/output error"))
	s.file.On("Close").Return(nil)

	_, err := s.provider.LoadPath("config")

	s.ErrorIs(err, ErrReadConfigurationFile)
	s.Contains(err.Error(), "input/output error")
	s.file.AssertCalled(s.T(), "Close")
}

func (s *ReaderTestSuite) TestCloseFailure() {
	s.file.On("Read", mock.Anything).Return(0, io.EOF)
	s.file.On("Close").Return(errors.New("bad file descriptor"))

	cfg, err := s.provider.LoadPath("config")

	s.ErrorIs(err, ErrReadConfigurationFile)
	s.Equal(exampleConfig{}, cfg)
}

func (s *ReaderTestSuite) TestEmptyFileDecodesToDefault() {
	s.file.On("Read", mock.Anything).Return(0, io.EOF)
	s.file.On("Close").Return(nil)

	cfg, err := s.provider.LoadPath("config")

	s.Require().NoError(err)
	s.Equal(exampleConfig{}, cfg)
}

func (s *ReaderTestSuite) TestOpenFailureIsGeneralLoad() {
	fsMock := &mocks.MockOsFS{}
	fsMock.On("Open", "config").Return(nil, errors.New("permission denied"))
	p := New[exampleConfig](WithFS[exampleConfig](fsMock))

	_, err := p.LoadPath("config")
	s.ErrorIs(err, ErrGeneralLoad)

	// only not-found falls back to the default
	_, err = p.LoadPathOrDefault("config")
	s.ErrorIs(err, ErrGeneralLoad)
}

func TestReaderSuite(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}
