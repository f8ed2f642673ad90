package handler

// MaxImportFileSize caps the uploaded import file at 5 MiB. Import files
// are small JSON documents; anything near this limit is a mistake.
const MaxImportFileSize = 5 << 20
