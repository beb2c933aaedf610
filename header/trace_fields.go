package header

// Trace header field byte offsets (1-indexed from the start of the 240-byte
// trace header), named so that callers porting code from segyio or
// Seismic Unix recognise them.
const (
	TrSeqLine              = 1
	TrSeqFile               = 5
	TrFieldRecord           = 9
	TrNumberOrigField       = 13
	TrEnergySourcePoint     = 17
	TrEnsemble              = 21
	TrNumInEnsemble         = 25
	TrTraceID               = 29
	TrSummedTraces          = 31
	TrStackedTraces         = 33
	TrDataUse               = 35
	TrOffset                = 37
	TrRecvGroupElev         = 41
	TrSourceSurfElev        = 45
	TrSourceDepth           = 49
	TrRecvDatumElev         = 53
	TrSourceDatumElev       = 57
	TrSourceWaterDepth      = 61
	TrGroupWaterDepth       = 65
	TrElevScalar            = 69
	TrSourceGroupScalar     = 71
	TrSourceX               = 73
	TrSourceY               = 77
	TrGroupX                = 81
	TrGroupY                = 85
	TrCoordUnits            = 89
	TrWeatheringVelo        = 91
	TrSubweatheringVelo     = 93
	TrSourceUpholeTime      = 95
	TrGroupUpholeTime       = 97
	TrSourceStaticCorr      = 99
	TrGroupStaticCorr       = 101
	TrTotStaticApplied      = 103
	TrLagA                  = 105
	TrLagB                  = 107
	TrDelayRecTime          = 109
	TrMuteTimeStart         = 111
	TrMuteTimeEnd           = 113
	TrSampleCount           = 115
	TrSampleInter           = 117
	TrGainType              = 119
	TrInstrGainConst        = 121
	TrInstrInitGain         = 123
	TrCorrelated            = 125
	TrSweepFreqStart        = 127
	TrSweepFreqEnd          = 129
	TrSweepLength           = 131
	TrSweepType             = 133
	TrSweepTaperlenStart    = 135
	TrSweepTaperlenEnd      = 137
	TrTaperType             = 139
	TrAliasFiltFreq         = 141
	TrAliasFiltSlope        = 143
	TrNotchFiltFreq         = 145
	TrNotchFiltSlope        = 147
	TrLowCutFreq            = 149
	TrHighCutFreq           = 151
	TrLowCutSlope           = 153
	TrHighCutSlope          = 155
	TrYearDataRec           = 157
	TrDayOfYear             = 159
	TrHourOfDay             = 161
	TrMinOfHour             = 163
	TrSecOfMin              = 165
	TrTimeBaseCode          = 167
	TrWeightingFac          = 169
	TrGeophoneGroupRoll1    = 171
	TrGeophoneGroupFirst    = 173
	TrGeophoneGroupLast     = 175
	TrGapSize               = 177
	TrOverTravel            = 179
	TrCdpX                  = 181
	TrCdpY                  = 185
	TrInline                = 189
	TrCrossline             = 193
	TrShotPoint             = 197
	TrShotPointScalar       = 201
	TrMeasureUnit           = 203
	TrTransductionMant      = 205
	TrTransductionExp       = 209
	TrTransductionUnit      = 211
	TrDeviceID              = 213
	TrScalarTraceHeader     = 215
	TrSourceType            = 217
	TrSourceEnergyDirMant   = 219
	TrSourceEnergyDirExp    = 223
	TrSourceMeasureMant     = 225
	TrSourceMeasureExp      = 229
	TrSourceMeasureUnit     = 231
	TrUnassigned1           = 233
	TrUnassigned2           = 237
)

// TraceHeaderSize is the fixed size in bytes of a SEG-Y trace header.
const TraceHeaderSize = 240

// traceFieldOrder lists every recognised trace field offset in ascending
// order; traceFieldWidth is derived from the gaps between consecutive
// entries (each field runs up to the next recognised offset, or to the end
// of the header for the last one).
var traceFieldOrder = []int{
	TrSeqLine, TrSeqFile, TrFieldRecord, TrNumberOrigField, TrEnergySourcePoint,
	TrEnsemble, TrNumInEnsemble, TrTraceID, TrSummedTraces, TrStackedTraces,
	TrDataUse, TrOffset, TrRecvGroupElev, TrSourceSurfElev, TrSourceDepth,
	TrRecvDatumElev, TrSourceDatumElev, TrSourceWaterDepth, TrGroupWaterDepth,
	TrElevScalar, TrSourceGroupScalar, TrSourceX, TrSourceY, TrGroupX, TrGroupY,
	TrCoordUnits, TrWeatheringVelo, TrSubweatheringVelo, TrSourceUpholeTime,
	TrGroupUpholeTime, TrSourceStaticCorr, TrGroupStaticCorr, TrTotStaticApplied,
	TrLagA, TrLagB, TrDelayRecTime, TrMuteTimeStart, TrMuteTimeEnd,
	TrSampleCount, TrSampleInter, TrGainType, TrInstrGainConst, TrInstrInitGain,
	TrCorrelated, TrSweepFreqStart, TrSweepFreqEnd, TrSweepLength, TrSweepType,
	TrSweepTaperlenStart, TrSweepTaperlenEnd, TrTaperType, TrAliasFiltFreq,
	TrAliasFiltSlope, TrNotchFiltFreq, TrNotchFiltSlope, TrLowCutFreq,
	TrHighCutFreq, TrLowCutSlope, TrHighCutSlope, TrYearDataRec, TrDayOfYear,
	TrHourOfDay, TrMinOfHour, TrSecOfMin, TrTimeBaseCode, TrWeightingFac,
	TrGeophoneGroupRoll1, TrGeophoneGroupFirst, TrGeophoneGroupLast, TrGapSize,
	TrOverTravel, TrCdpX, TrCdpY, TrInline, TrCrossline, TrShotPoint,
	TrShotPointScalar, TrMeasureUnit, TrTransductionMant, TrTransductionExp,
	TrTransductionUnit, TrDeviceID, TrScalarTraceHeader, TrSourceType,
	TrSourceEnergyDirMant, TrSourceEnergyDirExp, TrSourceMeasureMant,
	TrSourceMeasureExp, TrSourceMeasureUnit, TrUnassigned1, TrUnassigned2,
}

// TraceFieldNames maps each recognised offset to its Seismic-Unix-style
// short name, used by the seg-cat-traceheader CLI's --segyio-names mode.
var TraceFieldNames = map[int]string{
	TrSeqLine:            "tracl",
	TrSeqFile:            "tracr",
	TrFieldRecord:        "fldr",
	TrNumberOrigField:    "tracf",
	TrEnergySourcePoint:  "ep",
	TrEnsemble:           "cdp",
	TrNumInEnsemble:      "cdpt",
	TrTraceID:            "trid",
	TrSummedTraces:       "nvs",
	TrStackedTraces:      "nhs",
	TrDataUse:            "duse",
	TrOffset:             "offset",
	TrRecvGroupElev:      "gelev",
	TrSourceSurfElev:     "selev",
	TrSourceDepth:        "sdepth",
	TrRecvDatumElev:      "gdel",
	TrSourceDatumElev:    "sdel",
	TrSourceWaterDepth:   "swdep",
	TrGroupWaterDepth:    "gwdep",
	TrElevScalar:         "scalel",
	TrSourceGroupScalar:  "scalco",
	TrSourceX:            "sx",
	TrSourceY:            "sy",
	TrGroupX:             "gx",
	TrGroupY:             "gy",
	TrCoordUnits:         "counit",
	TrWeatheringVelo:     "wevel",
	TrSubweatheringVelo:  "swevel",
	TrSourceUpholeTime:   "sut",
	TrGroupUpholeTime:    "gut",
	TrSourceStaticCorr:   "sstat",
	TrGroupStaticCorr:    "gstat",
	TrTotStaticApplied:   "tstat",
	TrLagA:               "laga",
	TrLagB:               "lagb",
	TrDelayRecTime:       "delrt",
	TrMuteTimeStart:      "muts",
	TrMuteTimeEnd:        "mute",
	TrSampleCount:        "ns",
	TrSampleInter:        "dt",
	TrGainType:           "gain",
	TrInstrGainConst:     "igc",
	TrInstrInitGain:      "igi",
	TrCorrelated:         "corr",
	TrSweepFreqStart:     "sfs",
	TrSweepFreqEnd:       "sfe",
	TrSweepLength:        "slen",
	TrSweepType:          "styp",
	TrSweepTaperlenStart: "stas",
	TrSweepTaperlenEnd:   "stae",
	TrTaperType:          "tatyp",
	TrAliasFiltFreq:      "afilf",
	TrAliasFiltSlope:     "afils",
	TrNotchFiltFreq:      "nofilf",
	TrNotchFiltSlope:     "nofils",
	TrLowCutFreq:         "lcf",
	TrHighCutFreq:        "hcf",
	TrLowCutSlope:        "lcs",
	TrHighCutSlope:       "hcs",
	TrYearDataRec:        "year",
	TrDayOfYear:          "day",
	TrHourOfDay:          "hour",
	TrMinOfHour:          "minute",
	TrSecOfMin:           "sec",
	TrTimeBaseCode:       "timbas",
	TrWeightingFac:       "trwf",
	TrGeophoneGroupRoll1: "grnors",
	TrGeophoneGroupFirst: "grnofr",
	TrGeophoneGroupLast:  "grnlof",
	TrGapSize:            "gaps",
	TrOverTravel:         "otrav",
	TrCdpX:               "cdpx",
	TrCdpY:               "cdpy",
	TrInline:             "iline",
	TrCrossline:          "xline",
	TrShotPoint:          "shnum",
	TrShotPointScalar:    "shsca",
	TrMeasureUnit:        "tvmu",
	TrTransductionMant:   "transm",
	TrTransductionExp:    "transe",
	TrTransductionUnit:   "tdu",
	TrDeviceID:           "scaln",
	TrScalarTraceHeader:  "trunit",
	TrSourceType:         "sttyp",
	TrSourceEnergyDirMant: "sedm",
	TrSourceEnergyDirExp: "sede",
	TrSourceMeasureMant:  "smm",
	TrSourceMeasureExp:   "sme",
	TrSourceMeasureUnit:  "smu",
	TrUnassigned1:        "unass1",
	TrUnassigned2:        "unass2",
}

var traceFieldWidth = buildWidthTable(traceFieldOrder, TraceHeaderSize)

// buildWidthTable derives a [size]byte width lookup from an ascending list
// of recognised field offsets: each field's width is the gap to the next
// recognised offset (or to the end of the buffer for the last field).
func buildWidthTable(order []int, size int) [TraceHeaderSize + 1]byte {
	var table [TraceHeaderSize + 1]byte
	for i, off := range order {
		next := size + 1
		if i+1 < len(order) {
			next = order[i+1]
		}

		width := next - off
		table[off] = byte(width) //nolint:gosec // widths are always 2 or 4
	}

	return table
}

// IsValidTraceField reports whether offset is the start of a recognised
// trace header field.
func IsValidTraceField(offset int) bool {
	if offset < 1 || offset > TraceHeaderSize {
		return false
	}

	return traceFieldWidth[offset] != 0
}

// TraceFieldWidth returns the width in bytes (2 or 4) of the recognised
// trace field starting at offset, or 0 if offset is not recognised.
func TraceFieldWidth(offset int) int {
	if offset < 1 || offset > TraceHeaderSize {
		return 0
	}

	return int(traceFieldWidth[offset])
}
