package header

// Binary header field byte offsets (1-indexed from the start of the file,
// i.e. 3200 + intra-header offset).
const (
	BinJobID             = 3201
	BinLineNumber        = 3205
	BinReelNumber        = 3209
	BinTraces            = 3213
	BinAuxTraces         = 3215
	BinInterval          = 3217
	BinIntervalOrig      = 3219
	BinSamples           = 3221
	BinSamplesOrig       = 3223
	BinFormat            = 3225
	BinEnsembleFold      = 3227
	BinSortingCode       = 3229
	BinVerticalSum       = 3231
	BinSweepFreqStart    = 3233
	BinSweepFreqEnd      = 3235
	BinSweepLength       = 3237
	BinSweep             = 3239
	BinSweepChannel      = 3241
	BinSweepTaperStart   = 3243
	BinSweepTaperEnd     = 3245
	BinTaper             = 3247
	BinCorrelatedTraces  = 3249
	BinBinGainRecovery   = 3251
	BinAmplitudeRecovery = 3253
	BinMeasurementSystem = 3255
	BinImpulsePolarity   = 3257
	BinVibratoryPolarity = 3259
	BinSegyRevision      = 3501
	BinTraceFlag         = 3503
	BinExtHeaders        = 3505
)

// BinaryHeaderSize is the fixed size in bytes of the SEG-Y binary header.
const BinaryHeaderSize = 400

// BinaryHeaderStart is the absolute byte offset of the binary header.
const BinaryHeaderStart = 3200

// binaryFieldOrder lists every recognised binary field in ascending order,
// along with an explicit width: unlike the trace header, two of the
// reserved gaps (unassigned1 spanning 3261-3500, unassigned2 spanning
// 3507-3600) are wide unnamed regions rather than another field's
// intra-table padding, so widths for the last field in each contiguous run
// cannot be derived purely from "gap to the next name".
var binaryFieldWidth4 = map[int]bool{
	BinJobID:      true,
	BinLineNumber: true,
	BinReelNumber: true,
}

var binaryFieldOrder = []int{
	BinJobID, BinLineNumber, BinReelNumber, BinTraces, BinAuxTraces,
	BinInterval, BinIntervalOrig, BinSamples, BinSamplesOrig, BinFormat,
	BinEnsembleFold, BinSortingCode, BinVerticalSum, BinSweepFreqStart,
	BinSweepFreqEnd, BinSweepLength, BinSweep, BinSweepChannel,
	BinSweepTaperStart, BinSweepTaperEnd, BinTaper, BinCorrelatedTraces,
	BinBinGainRecovery, BinAmplitudeRecovery, BinMeasurementSystem,
	BinImpulsePolarity, BinVibratoryPolarity,
}

var binaryFieldOrder2 = []int{BinSegyRevision, BinTraceFlag, BinExtHeaders}

// BinaryFieldNames maps each recognised absolute offset to its
// Seismic-Unix-style short name, used by seg-cat-binheader.
var BinaryFieldNames = map[int]string{
	BinJobID:             "job",
	BinLineNumber:        "lino",
	BinReelNumber:        "reno",
	BinTraces:            "ntrpr",
	BinAuxTraces:         "nart",
	BinInterval:          "hdt",
	BinIntervalOrig:      "dto",
	BinSamples:           "hns",
	BinSamplesOrig:       "nso",
	BinFormat:            "format",
	BinEnsembleFold:      "fold",
	BinSortingCode:       "tsort",
	BinVerticalSum:       "vscode",
	BinSweepFreqStart:    "hsfs",
	BinSweepFreqEnd:      "hsfe",
	BinSweepLength:       "hslen",
	BinSweep:             "hsweep",
	BinSweepChannel:      "hscan",
	BinSweepTaperStart:   "htatyp_s",
	BinSweepTaperEnd:     "htatyp_e",
	BinTaper:             "htatyp",
	BinCorrelatedTraces:  "hcorr",
	BinBinGainRecovery:   "rcvm",
	BinAmplitudeRecovery: "mfeet",
	BinMeasurementSystem: "polyt",
	BinImpulsePolarity:   "vpol",
	BinVibratoryPolarity: "vibpol",
	BinSegyRevision:      "rev",
	BinTraceFlag:         "trflag",
	BinExtHeaders:        "exth",
}

var binaryFieldWidth = buildBinaryWidthTable()

// buildBinaryWidthTable derives the sparse [0..BinaryHeaderSize] width array
// from the two contiguous runs of recognised offsets. The 3201-3259 block
// is 4-byte Job/Line/Reel IDs followed by an uninterrupted run of 2-byte
// fields; the 3501-3505 block is three more 2-byte fields. Everything else
// (3261-3500 and 3507-3600) is unassigned.
func buildBinaryWidthTable() [BinaryHeaderSize + 1]byte {
	var table [BinaryHeaderSize + 1]byte

	for i, off := range binaryFieldOrder {
		rel := off - BinaryHeaderStart
		width := 2
		if binaryFieldWidth4[off] {
			width = 4
		}
		// Within the first run, the gap to the next field confirms the
		// width for every field except possibly the run's own boundary,
		// which is fixed by definition (BinVibratoryPolarity is 2 bytes;
		// it does not run up to BinSegyRevision).
		if i+1 < len(binaryFieldOrder) {
			next := binaryFieldOrder[i+1] - BinaryHeaderStart
			if next-rel < width {
				width = next - rel
			}
		}
		table[rel] = byte(width) //nolint:gosec // widths are always 2 or 4
	}

	for _, off := range binaryFieldOrder2 {
		rel := off - BinaryHeaderStart
		table[rel] = 2
	}

	return table
}

// IsValidBinaryField reports whether the absolute file offset off is the
// start of a recognised binary header field.
func IsValidBinaryField(off int) bool {
	rel := off - BinaryHeaderStart
	if rel < 1 || rel > BinaryHeaderSize {
		return false
	}

	return binaryFieldWidth[rel] != 0
}

// BinaryFieldWidth returns the width in bytes (2 or 4) of the recognised
// binary field starting at the absolute file offset off, or 0 if
// unrecognised.
func BinaryFieldWidth(off int) int {
	rel := off - BinaryHeaderStart
	if rel < 1 || rel > BinaryHeaderSize {
		return 0
	}

	return int(binaryFieldWidth[rel])
}
