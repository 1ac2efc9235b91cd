package audit

import "strings"

// Kode aksi audit. Hasil verifikasi pengajuan tertanam di kodenya.
const (
	ActionLogin          = "LOGIN"
	ActionLogout         = "LOGOUT"
	ActionChangePassword = "CHANGE_PASSWORD"
	ActionCreateUser     = "CREATE_USER"
	ActionUpdateUser     = "UPDATE_USER"
	ActionResetPassword  = "RESET_PASSWORD"
	ActionDeactivateUser = "DEACTIVATE_USER"

	ActionCreatePersonel = "CREATE_PERSONEL"
	ActionUpdatePersonel = "UPDATE_PERSONEL"
	ActionImportPersonel = "IMPORT_PERSONEL"

	ActionCreatePengajuan   = "CREATE_PENGAJUAN"
	ActionPengajuanApproved = "VERIFY_PENGAJUAN_APPROVED"
	ActionPengajuanRejected = "VERIFY_PENGAJUAN_REJECTED"
	// Pengajuan tetap approved tetapi perubahan data personel gagal diterapkan
	ActionPengajuanApplyFailed = "VERIFY_PENGAJUAN_APPLY_FAILED"

	ActionUploadDokumen = "UPLOAD_DOKUMEN"
	ActionDeleteDokumen = "DELETE_DOKUMEN"

	ActionExportPersonelExcel  = "EXPORT_PERSONEL_EXCEL"
	ActionExportPersonelPDF    = "EXPORT_PERSONEL_PDF"
	ActionExportStatistikExcel = "EXPORT_STATISTIK_EXCEL"

	ActionCreateReferensi = "CREATE_REFERENSI"
	ActionUpdateReferensi = "UPDATE_REFERENSI"
	ActionDeleteReferensi = "DELETE_REFERENSI"
)

const (
	EntityUser      = "user"
	EntityPersonel  = "personel"
	EntityPengajuan = "pengajuan"
	EntityDokumen   = "dokumen"
	EntityReferensi = "referensi"
	EntityExport    = "export"
)

// CreateRiwayatAction menghasilkan kode seperti CREATE_RIWAYAT_PANGKAT untuk entitas riwayat_pangkat.
func CreateRiwayatAction(entity string) string {
	return "CREATE_" + strings.ToUpper(entity)
}
