// migrate-media re-hosts legacy media on OSS.
//
// It scans one table column for URLs that live outside the configured
// bucket, downloads each file, re-uploads it through the OSS pipeline and
// prints the matching UPDATE statements to stdout. Nothing is written to
// the database; review the SQL, then run it.
//
// Usage:
//
//	migrate-media -table articles -id-column article_id -column article_image_urls -slot articles
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strings"
	"time"

	"yayasanku_backend/internals/configs"
	database "yayasanku_backend/internals/databases"
	ossHelper "yayasanku_backend/internals/helpers/oss"
)

const maxDownloadSize = 50 << 20

func main() {
	var (
		table    = flag.String("table", "", "table to scan")
		idCol    = flag.String("id-column", "", "primary key column")
		col      = flag.String("column", "", "URL column to migrate")
		slot     = flag.String("slot", "migrated", "OSS slot for the re-uploaded files")
		altQuery = flag.String("where", "", "extra WHERE clause")
	)
	flag.Parse()
	if *table == "" || *idCol == "" || *col == "" {
		log.Fatal("usage: migrate-media -table <t> -id-column <pk> -column <c> [-slot <s>] [-where <sql>]")
	}

	configs.LoadEnv()

	oss, err := ossHelper.NewOSSServiceFromEnv("yayasanku")
	if err != nil {
		log.Fatalf("OSS is required for migration: %v", err)
	}

	db := database.Connect()
	defer database.Close(db)

	where := fmt.Sprintf("%s IS NOT NULL AND %s <> '' AND %s NOT LIKE ?", *col, *col, *col)
	if *altQuery != "" {
		where += " AND (" + *altQuery + ")"
	}
	hostPrefix := oss.PublicURL("") + "%"

	type rec struct {
		ID  string
		URL string
	}
	var rows []rec
	q := fmt.Sprintf("SELECT %s AS id, %s AS url FROM %s WHERE %s", *idCol, *col, *table, where)
	if err := db.Raw(q, hostPrefix).Scan(&rows).Error; err != nil {
		log.Fatalf("scan %s: %v", *table, err)
	}
	log.Printf("found %d row(s) to migrate", len(rows))

	client := &http.Client{Timeout: 60 * time.Second}
	ctx := context.Background()

	migrated := 0
	for _, r := range rows {
		newURL, err := rehost(ctx, client, oss, *slot, r.URL)
		if err != nil {
			log.Printf("skip %s=%s: %v", *idCol, r.ID, err)
			continue
		}
		fmt.Printf("UPDATE %s SET %s = '%s' WHERE %s = '%s';\n", *table, *col, newURL, *idCol, r.ID)
		migrated++
	}
	log.Printf("done: %d migrated, %d skipped", migrated, len(rows)-migrated)
}

func rehost(ctx context.Context, client *http.Client, oss *ossHelper.OSSService, slot, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxDownloadSize {
		return "", fmt.Errorf("file exceeds %d bytes", maxDownloadSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		contentType = http.DetectContentType(data)
	}

	filename := path.Base(strings.SplitN(rawURL, "?", 2)[0])
	if filename == "" || filename == "." || filename == "/" {
		filename = "file"
	}
	return oss.UploadBytes(ctx, data, slot, filename, contentType)
}
