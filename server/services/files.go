package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"github.com/mattermost/msteams-mcp-server/server/msteams/clientmodels"
)

const (
	defaultMimeType = "application/octet-stream"
	base64Note      = "Content is base64-encoded"

	ShareScopeAnonymous    = "anonymous"
	ShareScopeOrganization = "organization"
)

type FileItem struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Size                 int64  `json:"size"`
	WebURL               string `json:"webUrl"`
	DownloadURL          string `json:"downloadUrl,omitempty"`
	CreatedDateTime      string `json:"createdDateTime"`
	LastModifiedDateTime string `json:"lastModifiedDateTime"`
	CreatedBy            string `json:"createdBy"`
	Folder               bool   `json:"folder"`
}

type DownloadedFile struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Content  string `json:"content"`
	Note     string `json:"note"`
}

type SharingLink struct {
	Link string `json:"link"`
	Type string `json:"type"`
}

type FileService struct {
	*base
}

func convertFileItem(item *clientmodels.DriveItem, creatorFallback string) *FileItem {
	createdBy := item.CreatedBy
	if createdBy == "" {
		createdBy = creatorFallback
	}
	return &FileItem{
		ID:                   item.ID,
		Name:                 item.Name,
		Size:                 item.Size,
		WebURL:               item.WebURL,
		DownloadURL:          item.DownloadURL,
		CreatedDateTime:      formatTime(item.CreatedDateTime),
		LastModifiedDateTime: formatTime(item.LastModifiedDateTime),
		CreatedBy:            createdBy,
		Folder:               item.IsFolder,
	}
}

func (s *FileService) listFiles(ctx context.Context, op, teamID, channelID string) ([]FileItem, error) {
	items, err := s.client.ListChannelFiles(ctx, teamID, channelID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	files := make([]FileItem, 0, len(items))
	for i := range items {
		files = append(files, *convertFileItem(&items[i], unknownName))
	}
	return files, nil
}

// ListFiles returns the items at the root of the channel's files folder.
func (s *FileService) ListFiles(ctx context.Context, teamID, channelID string) ([]FileItem, error) {
	return s.listFiles(ctx, "list channel files", teamID, channelID)
}

// SearchFiles matches the query against the item names of the channel's files folder, case
// insensitively.
func (s *FileService) SearchFiles(ctx context.Context, teamID, channelID, query string) ([]FileItem, error) {
	files, err := s.listFiles(ctx, "search files", teamID, channelID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	matches := []FileItem{}
	for _, f := range files {
		if strings.Contains(strings.ToLower(f.Name), query) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (s *FileService) GetFileMetadata(ctx context.Context, teamID, channelID, fileID string) (*FileItem, error) {
	item, err := s.client.GetChannelFile(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, remoteError("get file metadata", err)
	}
	return convertFileItem(item, unknownName), nil
}

// UploadFile stores the UTF-8 bytes of content under fileName, replacing any existing file.
func (s *FileService) UploadFile(ctx context.Context, teamID, channelID, fileName, content string) (*FileItem, error) {
	item, err := s.client.UploadChannelFile(ctx, teamID, channelID, fileName, []byte(content))
	if err != nil {
		return nil, remoteError("upload file", err)
	}
	return convertFileItem(item, selfName), nil
}

func (s *FileService) DownloadFile(ctx context.Context, teamID, channelID, fileID string) (*DownloadedFile, error) {
	const op = "download file"

	item, err := s.client.GetChannelFile(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, remoteError(op, err)
	}
	if item.IsFolder {
		return nil, InvalidArgumentError(op, errors.Errorf("%s is a folder", item.Name))
	}

	data, err := s.client.GetChannelFileContent(ctx, teamID, channelID, fileID)
	if err != nil {
		return nil, remoteError(op, err)
	}

	mimeType := item.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return &DownloadedFile{
		FileName: item.Name,
		MimeType: mimeType,
		Content:  base64.StdEncoding.EncodeToString(data),
		Note:     base64Note,
	}, nil
}

func (s *FileService) DeleteFile(ctx context.Context, teamID, channelID, fileID string) error {
	if err := s.client.DeleteChannelFile(ctx, teamID, channelID, fileID); err != nil {
		return remoteError("delete file", err)
	}
	return nil
}

// CreateFolder renames the new folder when the name is already taken.
func (s *FileService) CreateFolder(ctx context.Context, teamID, channelID, folderName string) (*FileItem, error) {
	item, err := s.client.CreateChannelFolder(ctx, teamID, channelID, folderName)
	if err != nil {
		return nil, remoteError("create folder", err)
	}
	folder := convertFileItem(item, selfName)
	folder.Folder = true
	return folder, nil
}

// ShareFile creates a view link for anonymous sharing and an edit link inside the organization.
func (s *FileService) ShareFile(ctx context.Context, teamID, channelID, fileID, scope string) (*SharingLink, error) {
	const op = "share file"

	var linkType string
	switch scope {
	case ShareScopeAnonymous:
		linkType = "view"
	case ShareScopeOrganization, "":
		scope = ShareScopeOrganization
		linkType = "edit"
	default:
		return nil, InvalidArgumentError(op, errors.Errorf("unsupported scope %q", scope))
	}

	link, err := s.client.ShareChannelFile(ctx, teamID, channelID, fileID, linkType, scope)
	if err != nil {
		return nil, remoteError(op, err)
	}
	return &SharingLink{Link: link.WebURL, Type: link.Type}, nil
}
