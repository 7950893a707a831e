package orchestrators

// User-facing progress messages
const (
	msgPreparing          = "Running the static analysis client, version %s"
	msgDownloading        = "Downloading the static analysis client"
	msgDownloadComplete   = "Download complete"
	msgExtracting         = "Extracting the static analysis client"
	msgDone               = "Done"
	msgOutdated           = "The static analysis client is out of date (local %s, latest %s)"
	msgLocalVersionError  = "Error checking the local static analysis client version: %v"
	msgRemoteVersionError = "Error checking the latest static analysis client version: %v"
	msgVersionCompare     = "Cannot compare static analysis client versions: %v"
	msgMultipleInstalls   = "Found several static analysis client installs, using %s and ignoring %s"
	msgRemoveFailed       = "Could not fully remove the old static analysis client: %v"
	msgInterrupted        = "Interrupted while waiting for the static analysis client"
	msgOutOfMemory        = "Ran out of memory downloading the static analysis client. Free memory or disk space and try again"
	msgGeneratingIRX      = "Error generating the IRX file"
	msgIRXMissing         = "The IRX file %s was not created"
	msgIRXGenerated       = "Generated IRX file %s"
)
