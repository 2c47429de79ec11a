package domain

// Action names recorded in the history log, one per supported operation.
const (
	ActionPDFToDoc = "PDF to DOC"
	ActionDocToTxt = "DOC to TXT"
	ActionImgToJpg = "Image to JPG"
	ActionPDFMerge = "PDF Merge"
)

// Upload is one file payload extracted from a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}

// ConversionResult points at a produced output artifact.
type ConversionResult struct {
	OutputPath string
	Filename   string
}

// PDFToDocxConverter rebuilds a PDF's text content as a DOCX document.
type PDFToDocxConverter interface {
	Convert(inputPath, outputPath string) error
}

// DocxTextExtractor pulls the plain text out of a DOCX document.
type DocxTextExtractor interface {
	ExtractText(inputPath string) (string, error)
}

// ImageTranscoder re-encodes a raster image as RGB JPEG.
type ImageTranscoder interface {
	TranscodeJPEG(inputPath, outputPath string) error
}

// PDFMerger concatenates multiple PDFs into one.
type PDFMerger interface {
	Merge(inputPaths []string, outputPath string) error
}

// ConvertService is the conversion dispatcher: it stages uploads,
// invokes the matching converter capability and records history.
type ConvertService interface {
	PDFToDocx(userID uint, upload Upload) (*ConversionResult, error)
	DocxToText(userID uint, upload Upload) (*ConversionResult, error)
	ImageToJPEG(userID uint, upload Upload) (*ConversionResult, error)
	MergePDFs(userID uint, uploads []Upload) (*ConversionResult, error)
}
