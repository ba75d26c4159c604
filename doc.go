/*
Package corpusy makes speech corpora ready to use.

A corpus is designated by a preset name. Its archive is looked up under an archive root
(local directory, GCS or S3 bucket, web server), forwarded from its origin when missing,
and extracted once into a local contents directory. Items are then listed and located
through a corpus handle, and several corpora can be combined into one.

The CLI lives in cmd/corpusy, the library in pkg/loader and pkg/presets.
*/
package corpusy
