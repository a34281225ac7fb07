package dicomtag

// rawTable is the offline-generated subset of the DICOM PS3.6 data
// dictionary this decoder depends on directly (file-meta group, common
// patient/study/series/image identifying attributes, and the handful of
// structural tags the decoder special-cases). Entries need not be listed
// in sorted order here; init() sorts them once at process start, per
// spec.md §4.1 ("it has no initialization order dependency beyond
// 'available before first decoder call'").
var rawTable = []Entry{
	// File Meta Information group (0002,xxxx) - PS3.10 §7.1.
	{Tag{0x0002, 0x0000}, "UL", "FileMetaInformationGroupLength", "1"},
	{Tag{0x0002, 0x0001}, "OB", "FileMetaInformationVersion", "1"},
	{Tag{0x0002, 0x0002}, "UI", "MediaStorageSOPClassUID", "1"},
	{Tag{0x0002, 0x0003}, "UI", "MediaStorageSOPInstanceUID", "1"},
	{Tag{0x0002, 0x0010}, "UI", "TransferSyntaxUID", "1"},
	{Tag{0x0002, 0x0012}, "UI", "ImplementationClassUID", "1"},
	{Tag{0x0002, 0x0013}, "SH", "ImplementationVersionName", "1"},
	{Tag{0x0002, 0x0016}, "AE", "SourceApplicationEntityTitle", "1"},

	// Identifying / patient / study / series attributes (0008, 0010, 0020).
	{Tag{0x0008, 0x0005}, "CS", "SpecificCharacterSet", "1-n"},
	{Tag{0x0008, 0x0008}, "CS", "ImageType", "2-n"},
	{Tag{0x0008, 0x0012}, "DA", "InstanceCreationDate", "1"},
	{Tag{0x0008, 0x0013}, "TM", "InstanceCreationTime", "1"},
	{Tag{0x0008, 0x0016}, "UI", "SOPClassUID", "1"},
	{Tag{0x0008, 0x0018}, "UI", "SOPInstanceUID", "1"},
	{Tag{0x0008, 0x0020}, "DA", "StudyDate", "1"},
	{Tag{0x0008, 0x0021}, "DA", "SeriesDate", "1"},
	{Tag{0x0008, 0x0022}, "DA", "AcquisitionDate", "1"},
	{Tag{0x0008, 0x0023}, "DA", "ContentDate", "1"},
	{Tag{0x0008, 0x0030}, "TM", "StudyTime", "1"},
	{Tag{0x0008, 0x0031}, "TM", "SeriesTime", "1"},
	{Tag{0x0008, 0x0050}, "SH", "AccessionNumber", "1"},
	{Tag{0x0008, 0x0060}, "CS", "Modality", "1"},
	{Tag{0x0008, 0x0070}, "LO", "Manufacturer", "1"},
	{Tag{0x0008, 0x0080}, "LO", "InstitutionName", "1"},
	{Tag{0x0008, 0x0090}, "PN", "ReferringPhysicianName", "1"},
	{Tag{0x0008, 0x1030}, "LO", "StudyDescription", "1"},
	{Tag{0x0008, 0x103E}, "LO", "SeriesDescription", "1"},

	{Tag{0x0010, 0x0010}, "PN", "PatientName", "1"},
	{Tag{0x0010, 0x0020}, "LO", "PatientID", "1"},
	{Tag{0x0010, 0x0030}, "DA", "PatientBirthDate", "1"},
	{Tag{0x0010, 0x0040}, "CS", "PatientSex", "1"},
	{Tag{0x0010, 0x1010}, "AS", "PatientAge", "1"},
	{Tag{0x0010, 0x1030}, "DS", "PatientWeight", "1"},

	{Tag{0x0018, 0x0010}, "LO", "ContrastBolusAgent", "1"},
	{Tag{0x0018, 0x0015}, "CS", "BodyPartExamined", "1"},
	{Tag{0x0018, 0x0050}, "DS", "SliceThickness", "1"},
	{Tag{0x0018, 0x0060}, "DS", "KVP", "1"},
	{Tag{0x0018, 0x1000}, "LO", "DeviceSerialNumber", "1"},
	{Tag{0x0018, 0x1020}, "LO", "SoftwareVersions", "1-n"},

	{Tag{0x0020, 0x000D}, "UI", "StudyInstanceUID", "1"},
	{Tag{0x0020, 0x000E}, "UI", "SeriesInstanceUID", "1"},
	{Tag{0x0020, 0x0010}, "SH", "StudyID", "1"},
	{Tag{0x0020, 0x0011}, "IS", "SeriesNumber", "1"},
	{Tag{0x0020, 0x0013}, "IS", "InstanceNumber", "1"},
	{Tag{0x0020, 0x0032}, "DS", "ImagePositionPatient", "3"},
	{Tag{0x0020, 0x0037}, "DS", "ImageOrientationPatient", "6"},
	{Tag{0x0020, 0x0052}, "UI", "FrameOfReferenceUID", "1"},
	{Tag{0x0020, 0x1040}, "LO", "PositionReferenceIndicator", "1"},

	{Tag{0x0028, 0x0002}, "US", "SamplesPerPixel", "1"},
	{Tag{0x0028, 0x0004}, "CS", "PhotometricInterpretation", "1"},
	{Tag{0x0028, 0x0010}, "US", "Rows", "1"},
	{Tag{0x0028, 0x0011}, "US", "Columns", "1"},
	{Tag{0x0028, 0x0030}, "DS", "PixelSpacing", "2"},
	{Tag{0x0028, 0x0100}, "US", "BitsAllocated", "1"},
	{Tag{0x0028, 0x0101}, "US", "BitsStored", "1"},
	{Tag{0x0028, 0x0102}, "US", "HighBit", "1"},
	{Tag{0x0028, 0x0103}, "US", "PixelRepresentation", "1"},
	{Tag{0x0028, 0x1050}, "DS", "WindowCenter", "1-n"},
	{Tag{0x0028, 0x1051}, "DS", "WindowWidth", "1-n"},
	{Tag{0x0028, 0x1052}, "DS", "RescaleIntercept", "1"},
	{Tag{0x0028, 0x1053}, "DS", "RescaleSlope", "1"},

	{Tag{0x0040, 0x0275}, "SQ", "RequestAttributesSequence", "1"},
	{Tag{0x0040, 0xA010}, "CS", "RelationshipType", "1"},

	{Tag{0x7FE0, 0x0010}, "OW", "PixelData", "1"},

	// Query/Retrieve Level, used only as a filter key by dicom.Query;
	// ported from odicom's queryretrieve.go universal-match shortcut.
	{Tag{0x0008, 0x0052}, "CS", "QueryRetrieveLevel", "1"},

	// Structural / sequence delimiter tags (group FFFE), always VR=NA on
	// the wire. Their dictionary entries exist only so DebugString/Find
	// don't report them as private/unknown; the decoder special-cases
	// them directly via the dicomtag sentinel vars above rather than by
	// dictionary lookup.
	{Tag{0xFFFE, 0xE000}, "NA", "Item", "1"},
	{Tag{0xFFFE, 0xE00D}, "NA", "ItemDelimitationItem", "1"},
	{Tag{0xFFFE, 0xE0DD}, "NA", "SequenceDelimitationItem", "1"},
}
