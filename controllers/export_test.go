package controllers

// MaxUploadFileSize re-exports maxUploadFileSize for the external test
// package.
const MaxUploadFileSize = maxUploadFileSize
